package bridge

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func textContent(text string) Content {
	return Content{Type: "text", Text: text}
}

// recordingInvoke returns an InvokeFunc that hands back result/err and
// records whether and with which arguments it was called.
func recordingInvoke(result *CallToolResult, err error) (InvokeFunc, *invokeRecord) {
	record := &invokeRecord{}
	return func(ctx context.Context, args map[string]any) (*CallToolResult, error) {
		record.called = true
		record.args = args
		return result, err
	}, record
}

type invokeRecord struct {
	called bool
	args   map[string]any
}

func newTestTool(t *testing.T, invoke InvokeFunc, opts ...Option) *NativeTool {
	t.Helper()
	tool, err := New(opts...).Adapt(invoke, ToolDescriptor{
		Name:        "echo",
		Description: "Echoes things back",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"x": map[string]any{"type": "integer"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Adapt returned error: %v", err)
	}
	return tool
}

func TestCallWithPositionalMapping(t *testing.T) {
	invoke, record := recordingInvoke(&CallToolResult{Content: []Content{textContent("42")}}, nil)
	tool := newTestTool(t, invoke)

	out, err := tool.Call(context.Background(), []any{map[string]any{"x": 1}}, nil)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if out != "42" {
		t.Errorf("expected result %q, got %q", "42", out)
	}
	if !reflect.DeepEqual(record.args, map[string]any{"x": 1}) {
		t.Errorf("expected remote to receive {x: 1}, got %v", record.args)
	}
}

func TestCallWithKeywordArguments(t *testing.T) {
	invoke, record := recordingInvoke(&CallToolResult{Content: []Content{textContent("ok")}}, nil)
	tool := newTestTool(t, invoke)

	if _, err := tool.Call(context.Background(), nil, map[string]any{"x": 1, "y": 2}); err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if !reflect.DeepEqual(record.args, map[string]any{"x": 1, "y": 2}) {
		t.Errorf("expected remote to receive both keywords, got %v", record.args)
	}
}

func TestCallWithNoArguments(t *testing.T) {
	invoke, record := recordingInvoke(&CallToolResult{Content: []Content{textContent("ok")}}, nil)
	tool := newTestTool(t, invoke)

	if _, err := tool.Call(context.Background(), nil, nil); err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if !record.called {
		t.Fatalf("expected remote to be invoked")
	}
	if len(record.args) != 0 {
		t.Errorf("expected empty argument mapping, got %v", record.args)
	}
}

func TestCallRejectsAmbiguousShapes(t *testing.T) {
	cases := []struct {
		name   string
		args   []any
		kwargs map[string]any
	}{
		{"two positionals", []any{map[string]any{}, map[string]any{}}, nil},
		{"non-mapping positional", []any{"not a mapping"}, nil},
		{"positional plus keywords", []any{map[string]any{"x": 1}}, map[string]any{"y": 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			invoke, record := recordingInvoke(&CallToolResult{Content: []Content{textContent("ok")}}, nil)
			tool := newTestTool(t, invoke)

			_, err := tool.Call(context.Background(), tc.args, tc.kwargs)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %v", err)
			}
			if argErr.Tool != "echo" {
				t.Errorf("expected error to name the tool, got %q", argErr.Tool)
			}
			if record.called {
				t.Errorf("expected remote to stay uninvoked on ambiguous call")
			}
		})
	}
}

func TestCallEmptyResult(t *testing.T) {
	invoke, _ := recordingInvoke(&CallToolResult{}, nil)
	tool := newTestTool(t, invoke)

	_, err := tool.Call(context.Background(), nil, nil)
	var emptyErr *EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyResultError, got %v", err)
	}
	if emptyErr.Tool != "echo" {
		t.Errorf("expected error to name the tool, got %q", emptyErr.Tool)
	}
}

func TestCallNonTextContent(t *testing.T) {
	invoke, _ := recordingInvoke(&CallToolResult{Content: []Content{
		{Type: "image", MimeType: "image/png"},
		textContent("ignored"),
	}}, nil)
	tool := newTestTool(t, invoke)

	_, err := tool.Call(context.Background(), nil, nil)
	var contentErr *UnsupportedContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("expected UnsupportedContentError, got %v", err)
	}
	if contentErr.Kind != "image" {
		t.Errorf("expected error to name the content kind, got %q", contentErr.Kind)
	}
}

func TestCallMultipleContentWarnsAndUsesFirst(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	invoke, _ := recordingInvoke(&CallToolResult{Content: []Content{
		textContent("a"),
		textContent("b"),
	}}, nil)
	tool := newTestTool(t, invoke, WithLogger(zap.New(core)))

	out, err := tool.Call(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if out != "a" {
		t.Errorf("expected first content item, got %q", out)
	}
	warned := logs.FilterMessage("tool returned multiple content items, using the first one")
	if warned.Len() != 1 {
		t.Fatalf("expected exactly one discard warning, got %d", warned.Len())
	}
}

func TestCallPassesThroughInvokeError(t *testing.T) {
	transportErr := errors.New("connection reset")
	invoke, _ := recordingInvoke(nil, transportErr)
	tool := newTestTool(t, invoke)

	_, err := tool.Call(context.Background(), nil, nil)
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error to surface unchanged, got %v", err)
	}
}

func TestNativeToolMetadata(t *testing.T) {
	invoke, _ := recordingInvoke(&CallToolResult{Content: []Content{textContent("ok")}}, nil)
	tool := newTestTool(t, invoke)

	if tool.Name() != "echo" {
		t.Errorf("expected name 'echo', got %q", tool.Name())
	}
	if tool.Description() != "Echoes things back" {
		t.Errorf("unexpected description %q", tool.Description())
	}
	if tool.OutputType() != StringOutput {
		t.Errorf("expected output type %q, got %q", StringOutput, tool.OutputType())
	}
	if !tool.Initialized() {
		t.Errorf("expected tool to be initialized as constructed")
	}
	if !tool.SkipsSignatureValidation() {
		t.Errorf("expected tool to opt out of signature validation")
	}
	if _, ok := tool.Inputs()["x"]; !ok {
		t.Errorf("expected inputs to contain x, got %v", tool.Inputs())
	}
}
