// Package catalog models the backend's list of permitted rule definitions
// and the loaders that fetch it. Definition names join against pkg/rules tags
// by exact string equality; a definition whose name the local registry does
// not know is version skew and downgrades to a warned no-op downstream.
package catalog

// Definition mirrors one entry of the backend rule catalog. Name is the join
// key into the local rule registry.
type Definition struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	IsPublic    bool     `json:"is_public" yaml:"is_public"`
	FieldTypes  []string `json:"field_types" yaml:"field_types"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at"`
}

// Catalog is an immutable, ordered set of definitions with name and id
// lookups. Descriptions are sanitized at construction because they arrive as
// backend-authored markup.
type Catalog struct {
	definitions []Definition
	byName      map[string]int
	byID        map[int]int
}

// New builds a catalog from the provided definitions. Definitions without a
// name are dropped; a duplicate name replaces the earlier definition but
// keeps its position.
func New(definitions ...Definition) *Catalog {
	c := &Catalog{
		byName: make(map[string]int, len(definitions)),
		byID:   make(map[int]int, len(definitions)),
	}
	for _, def := range definitions {
		if def.Name == "" {
			continue
		}
		def.Description = sanitizeDescription(def.Description)
		if idx, exists := c.byName[def.Name]; exists {
			c.definitions[idx] = def
			c.byID[def.ID] = idx
			continue
		}
		c.byName[def.Name] = len(c.definitions)
		c.byID[def.ID] = len(c.definitions)
		c.definitions = append(c.definitions, def)
	}
	return c
}

// Lookup returns the definition registered under a name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	idx, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}
	return c.definitions[idx], true
}

// LookupID returns the definition with the given backend id.
func (c *Catalog) LookupID(id int) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	idx, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.definitions[idx], true
}

// Definitions returns the catalog content in its original order.
func (c *Catalog) Definitions() []Definition {
	if c == nil {
		return nil
	}
	return append([]Definition(nil), c.definitions...)
}

// Names returns the definition names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.definitions))
	for _, def := range c.definitions {
		names = append(names, def.Name)
	}
	return names
}

// Len reports the number of definitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.definitions)
}

// Empty reports whether the catalog holds any definitions.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}
