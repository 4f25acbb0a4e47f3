package module

import (
	"fmt"
	"sort"
)

// Catalog maps derived module names to factories. It is populated at
// startup and passed to the Loader; a name missing from the catalog is
// reported as NotFound rather than treated as a fault.
type Catalog struct {
	factories map[string]Factory
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Names are PascalCase and must match
// the derived name of the module's source file exactly.
func (c *Catalog) Register(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, name)
	}
	if c.factories == nil {
		c.factories = make(map[string]Factory)
	}
	if _, exists := c.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	c.factories[name] = factory
	return nil
}

// Lookup returns the factory registered under name.
func (c *Catalog) Lookup(name string) (Factory, bool) {
	f, ok := c.factories[name]
	return f, ok
}

// Names returns the registered module names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
