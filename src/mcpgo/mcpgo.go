// Package mcpgo binds the bridge to MCP servers reached through the
// mark3labs/mcp-go client. It converts tool declarations and call results
// into the bridge's model and pairs each discovered tool with an invoke
// function, leaving connection setup and process lifecycle to the caller.
package mcpgo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	bridge "github.com/Protocol-Lattice/go-mcp-bridge"
)

// ToolCaller is the slice of the MCP client the bridge needs: listing tools
// and calling them over an already-established session. *client.Client
// satisfies it.
type ToolCaller interface {
	ListTools(ctx context.Context, request mcp.ListToolsRequest) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Descriptor converts an MCP tool declaration into a bridge descriptor. The
// raw JSON schema is preferred when the server provided one, since it keeps
// $defs and $ref indirection intact for the resolver.
func Descriptor(t mcp.Tool) bridge.ToolDescriptor {
	schema := map[string]any{}

	if len(t.RawInputSchema) > 0 {
		_ = json.Unmarshal(t.RawInputSchema, &schema)
	} else if data, err := json.Marshal(t.InputSchema); err == nil {
		_ = json.Unmarshal(data, &schema)
	}

	// Servers may omit properties entirely for zero-argument tools; hand the
	// resolver an empty object instead of failing every such tool.
	if _, ok := schema["type"]; !ok {
		schema["type"] = "object"
	}
	if _, ok := schema["properties"]; !ok {
		schema["properties"] = map[string]any{}
	}

	return bridge.ToolDescriptor{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}
}

// Result converts an MCP call result into the bridge result model.
func Result(res *mcp.CallToolResult) *bridge.CallToolResult {
	if res == nil {
		return &bridge.CallToolResult{}
	}
	out := &bridge.CallToolResult{IsError: res.IsError}
	for _, item := range res.Content {
		out.Content = append(out.Content, convertContent(item))
	}
	return out
}

func convertContent(item mcp.Content) bridge.Content {
	switch c := item.(type) {
	case mcp.TextContent:
		return bridge.Content{Type: "text", Text: c.Text}
	case mcp.ImageContent:
		return bridge.Content{Type: "image", MimeType: c.MIMEType}
	case mcp.AudioContent:
		return bridge.Content{Type: "audio", MimeType: c.MIMEType}
	case mcp.EmbeddedResource:
		return bridge.Content{Type: "resource"}
	default:
		return bridge.Content{Type: fmt.Sprintf("%T", item)}
	}
}

// Invoke returns an InvokeFunc that executes the named tool through the
// caller. The call blocks until the server responds or ctx is done.
func Invoke(caller ToolCaller, name string) bridge.InvokeFunc {
	return func(ctx context.Context, args map[string]any) (*bridge.CallToolResult, error) {
		req := mcp.CallToolRequest{}
		req.Params.Name = name
		req.Params.Arguments = args

		res, err := caller.CallTool(ctx, req)
		if err != nil {
			return nil, err
		}
		return Result(res), nil
	}
}

// Discover lists every tool the caller advertises, following pagination, and
// pairs each descriptor with its invoke function ready for Adapter.AdaptAll.
func Discover(ctx context.Context, caller ToolCaller) ([]bridge.DiscoveredTool, error) {
	var discovered []bridge.DiscoveredTool

	req := mcp.ListToolsRequest{}
	for {
		result, err := caller.ListTools(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		for _, t := range result.Tools {
			discovered = append(discovered, bridge.DiscoveredTool{
				Invoke:     Invoke(caller, t.Name),
				Descriptor: Descriptor(t),
			})
		}
		if result.NextCursor == "" {
			break
		}
		req.Params.Cursor = result.NextCursor
	}
	return discovered, nil
}
