package bridge

import "context"

// ToolDescriptor describes a remotely callable tool as advertised by the
// tool server: a unique name, a free-text description and a JSON-Schema style
// input schema. Descriptors are owned by the transport collaborator and are
// read-only to the bridge.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Content is one item of a tool result, tagged by kind. Type is "text" for
// textual payloads; other kinds (image, audio, resource, ...) carry their
// payload out of band.
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// CallToolResult is the structured response produced by one remote tool
// invocation. It is not persisted anywhere; each call produces a fresh one.
type CallToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// InvokeFunc executes one remote tool call with the given argument mapping
// and blocks until the call completes. Cancellation, timeouts and retries are
// the collaborator's responsibility, not the bridge's.
type InvokeFunc func(ctx context.Context, args map[string]any) (*CallToolResult, error)

// DiscoveredTool pairs a tool descriptor with the function that invokes it.
// Discovery components yield one per available tool.
type DiscoveredTool struct {
	Invoke     InvokeFunc
	Descriptor ToolDescriptor
}
