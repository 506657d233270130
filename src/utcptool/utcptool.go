// Package utcptool exposes bridge tools as UTCP tools with in-process
// handlers, so an embedding application can serve adapted remote tools to a
// UTCP client alongside its own.
package utcptool

import (
	"context"
	"strings"

	"github.com/universal-tool-calling-protocol/go-utcp/src/providers/base"
	"github.com/universal-tool-calling-protocol/go-utcp/src/tools"

	bridge "github.com/Protocol-Lattice/go-mcp-bridge"
)

// AsUTCPTool wraps a bridge tool as a UTCP tool. providerName groups tools
// under one provider; when empty it defaults to the segment of the tool name
// before the first dot.
func AsUTCPTool(t bridge.Tool, providerName string) tools.Tool {
	name := t.Name()
	providerName = strings.TrimSpace(providerName)
	if providerName == "" {
		providerName = name
		if parts := strings.Split(name, "."); len(parts) > 1 {
			providerName = parts[0]
		}
	}

	properties := make(map[string]any, len(t.Inputs()))
	for param, spec := range t.Inputs() {
		entry := make(map[string]any, len(spec))
		for k, v := range spec {
			entry[k] = v
		}
		properties[param] = entry
	}

	return tools.Tool{
		Name:        name,
		Description: t.Description(),
		Provider: &base.BaseProvider{
			Name:         providerName,
			ProviderType: base.ProviderCLI, // in-process handler, no remote transport
		},
		Inputs: tools.ToolInputOutputSchema{
			Type:       "object",
			Properties: properties,
		},
		Outputs: tools.ToolInputOutputSchema{
			Type: "object",
			Properties: map[string]any{
				"result": map[string]any{"type": t.OutputType()},
			},
		},
		Handler: tools.ToolHandler(func(ctx context.Context, inputs map[string]interface{}) (any, error) {
			return t.Call(ctx, nil, inputs)
		}),
	}
}
