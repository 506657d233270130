package bridge

import (
	"context"

	"go.uber.org/zap"
)

// StringOutput is the only output type the bridge produces: every adapted
// tool renders its result as a single string.
const StringOutput = "string"

// Tool is the contract the host agent framework expects from a callable
// tool: identifying metadata, a flat per-parameter inputs mapping, a declared
// output type and a single invocation entry point.
//
// Call accepts the framework's two invocation conventions: exactly one
// positional argument holding the full argument mapping, or keyword arguments
// alone. Any other shape is ambiguous and rejected with an *ArgumentError.
type Tool interface {
	Name() string
	Description() string
	Inputs() map[string]map[string]any
	OutputType() string
	Call(ctx context.Context, args []any, kwargs map[string]any) (string, error)
}

// NativeTool is the bridge-built implementation of Tool. It is immutable
// after construction and keeps no state between calls beyond the invoke
// closure captured from the collaborator, so concurrent calls are as safe as
// the InvokeFunc itself.
type NativeTool struct {
	name        string
	description string
	inputs      map[string]map[string]any
	invoke      InvokeFunc
	logger      *zap.Logger
}

func (t *NativeTool) Name() string        { return t.name }
func (t *NativeTool) Description() string { return t.description }

// Inputs returns the resolved properties mapping: parameter name to its
// normalized sub-schema, each entry carrying at least a description and a
// type.
func (t *NativeTool) Inputs() map[string]map[string]any { return t.inputs }

func (t *NativeTool) OutputType() string { return StringOutput }

// Initialized reports that the tool is usable as constructed; no separate
// initialization step is required by the caller.
func (t *NativeTool) Initialized() bool { return true }

// SkipsSignatureValidation tells the host framework not to validate calls
// against a fixed native signature. Argument shapes come from the resolved
// schema, which only exists at runtime.
func (t *NativeTool) SkipsSignatureValidation() bool { return true }

// Call maps the framework invocation onto a single argument mapping,
// forwards it to the remote tool and adapts the result back to a string.
// Transport errors from the invoke function surface unchanged.
func (t *NativeTool) Call(ctx context.Context, args []any, kwargs map[string]any) (string, error) {
	mapping, err := t.argumentMapping(args, kwargs)
	if err != nil {
		return "", err
	}

	result, err := t.invoke(ctx, mapping)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Content) == 0 {
		return "", &EmptyResultError{Tool: t.name}
	}
	if len(result.Content) > 1 {
		t.logger.Warn("tool returned multiple content items, using the first one",
			zap.String("tool", t.name),
			zap.Int("discarded", len(result.Content)-1))
	}
	first := result.Content[0]
	if first.Type != "text" {
		return "", &UnsupportedContentError{Tool: t.name, Kind: first.Type}
	}
	return first.Text, nil
}

// argumentMapping applies the invocation decision table. It is a tagged
// check over the argument shape received, not reflection.
func (t *NativeTool) argumentMapping(args []any, kwargs map[string]any) (map[string]any, error) {
	if len(args) == 0 {
		return kwargs, nil
	}
	if len(args) > 1 {
		return nil, &ArgumentError{Tool: t.name, Reason: "multiple positional arguments are not supported"}
	}
	mapping, ok := args[0].(map[string]any)
	if !ok {
		return nil, &ArgumentError{Tool: t.name, Reason: "a single positional argument must be an argument mapping"}
	}
	if len(kwargs) > 0 {
		return nil, &ArgumentError{Tool: t.name, Reason: "combined positional and keyword arguments are not supported"}
	}
	return mapping, nil
}
