package bridge

import (
	"fmt"
	"strings"
	"sync"
)

// Catalog maintains an ordered set of adapted tools and provides lookup by
// name. It is the hand-off point between the bridge and whichever registry
// the embedding framework uses.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewCatalog constructs a catalog seeded with the provided tools. Seeding
// stops at the first tool that cannot be registered.
func NewCatalog(tools []Tool) (*Catalog, error) {
	catalog := &Catalog{
		tools: make(map[string]Tool),
	}
	for _, tool := range tools {
		if err := catalog.Register(tool); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// Register adds a tool to the catalog using a lower-cased key. Duplicate
// names return an error.
func (c *Catalog) Register(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	key := strings.ToLower(strings.TrimSpace(tool.Name()))
	if key == "" {
		return fmt.Errorf("tool name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tools[key]; exists {
		return fmt.Errorf("tool %s already registered", tool.Name())
	}
	c.tools[key] = tool
	c.order = append(c.order, key)
	return nil
}

// Lookup returns the tool registered under name, if present.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tool, ok := c.tools[strings.ToLower(strings.TrimSpace(name))]
	return tool, ok
}

// Names returns the registered tool names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.order))
	for _, key := range c.order {
		names = append(names, c.tools[key].Name())
	}
	return names
}

// Tools returns the registered tools in registration order.
func (c *Catalog) Tools() []Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tools := make([]Tool, 0, len(c.order))
	for _, key := range c.order {
		tools = append(tools, c.tools[key])
	}
	return tools
}
