package catalog

import "antidoshirak/internal/domain/entities"

// Catalog resolves tool ids to their definitions. The static table is
// read-only; user-defined custom tools can be layered on per lookup
// without mutating it.
type Catalog struct {
	tools []entities.ToolDefinition
	index map[string]entities.ToolDefinition
}

func New() *Catalog {
	return newFrom(defaultTools)
}

func newFrom(tools []entities.ToolDefinition) *Catalog {
	idx := make(map[string]entities.ToolDefinition, len(tools))
	for _, t := range tools {
		idx[t.ID] = t
	}
	return &Catalog{tools: tools, index: idx}
}

// Lookup resolves a tool id. The boolean follows the comma-ok convention;
// an unknown id is a skip for callers, never an error.
func (c *Catalog) Lookup(id string) (entities.ToolDefinition, bool) {
	t, ok := c.index[id]
	return t, ok
}

// LookupWith resolves against the static table first, then the supplied
// extras (custom tools from settings).
func (c *Catalog) LookupWith(id string, extras []entities.ToolDefinition) (entities.ToolDefinition, bool) {
	if t, ok := c.index[id]; ok {
		return t, true
	}
	for _, t := range extras {
		if t.ID == id {
			return t, true
		}
	}
	return entities.ToolDefinition{}, false
}

// Tools returns the static table in its stable order.
func (c *Catalog) Tools() []entities.ToolDefinition {
	out := make([]entities.ToolDefinition, len(c.tools))
	copy(out, c.tools)
	return out
}
