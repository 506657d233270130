// Package einotool exposes bridge tools to the CloudWeGo Eino framework so
// adapted remote tools can be attached to Eino chat models and graphs.
package einotool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	bridge "github.com/Protocol-Lattice/go-mcp-bridge"
)

// Wrap adapts a bridge tool to Eino's invokable tool contract.
func Wrap(t bridge.Tool) tool.InvokableTool {
	return &einoTool{tool: t}
}

type einoTool struct {
	tool bridge.Tool
}

func (e *einoTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	inputs := e.tool.Inputs()
	params := make(map[string]*schema.ParameterInfo, len(inputs))
	for name, prop := range inputs {
		info := &schema.ParameterInfo{Type: dataType(prop)}
		if desc, ok := prop["description"].(string); ok {
			info.Desc = desc
		}
		params[name] = info
	}

	return &schema.ToolInfo{
		Name:        e.tool.Name(),
		Desc:        e.tool.Description(),
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}, nil
}

func (e *einoTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	kwargs := map[string]any{}
	if argumentsInJSON != "" {
		if err := json.Unmarshal([]byte(argumentsInJSON), &kwargs); err != nil {
			return "", fmt.Errorf("tool %s: decode arguments: %w", e.tool.Name(), err)
		}
	}
	return e.tool.Call(ctx, nil, kwargs)
}

func dataType(prop map[string]any) schema.DataType {
	t, _ := prop["type"].(string)
	switch t {
	case "number":
		return schema.Number
	case "integer":
		return schema.Integer
	case "boolean":
		return schema.Boolean
	case "object":
		return schema.Object
	case "array":
		return schema.Array
	case "null":
		return schema.Null
	default:
		return schema.String
	}
}
