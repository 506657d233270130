package bridge

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Option configures adapter construction.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func defaultConfig() *config {
	return &config{logger: zap.NewNop()}
}

// WithLogger sets the logger used to report discarded content items.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Adapter builds framework-native tools out of tool descriptors and their
// invoke functions. One adapter can serve any number of tools.
type Adapter struct {
	logger *zap.Logger
}

// New creates an Adapter with the provided options.
func New(opts ...Option) *Adapter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Adapter{logger: cfg.logger}
}

// Adapt wraps one discovered tool. It resolves and normalizes the input
// schema, captures the invoke function and returns a tool that is usable
// immediately. The remote tool is never called here. A missing description
// stays the empty string so downstream code never sees an absent value.
func (a *Adapter) Adapt(invoke InvokeFunc, descriptor ToolDescriptor) (*NativeTool, error) {
	if strings.TrimSpace(descriptor.Name) == "" {
		return nil, errors.New("tool descriptor has no name")
	}
	if invoke == nil {
		return nil, fmt.Errorf("tool %s has no invoke function", descriptor.Name)
	}

	inputs, err := ResolveInputSchema(descriptor.InputSchema)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) && schemaErr.Tool == "" {
			schemaErr.Tool = descriptor.Name
		}
		return nil, err
	}

	return &NativeTool{
		name:        descriptor.Name,
		description: descriptor.Description,
		inputs:      inputs,
		invoke:      invoke,
		logger:      a.logger,
	}, nil
}

// AdaptAll adapts every discovered tool in order. The first descriptor that
// cannot be adapted aborts the batch.
func (a *Adapter) AdaptAll(discovered []DiscoveredTool) ([]*NativeTool, error) {
	tools := make([]*NativeTool, 0, len(discovered))
	for _, d := range discovered {
		tool, err := a.Adapt(d.Invoke, d.Descriptor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
