package game

import (
	"fmt"
	"sort"

	"github.com/John-DND/RegularCommands/pkg/converter"
)

// Item is one entry in the item catalog.
type Item struct {
	Name     string
	MaxStack int
}

// Catalog is the table of known items. It backs the item-name converter the
// same way a host's material table would.
type Catalog struct {
	items map[string]Item
}

// DefaultCatalog returns a catalog with a handful of familiar items.
func DefaultCatalog() *Catalog {
	c := &Catalog{items: make(map[string]Item)}
	for _, item := range []Item{
		{"stone", 64},
		{"dirt", 64},
		{"sand", 64},
		{"oak_planks", 64},
		{"torch", 64},
		{"iron_sword", 1},
		{"golden_apple", 64},
	} {
		c.items[item.Name] = item
	}
	return c
}

// Lookup returns the item registered under name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Names returns every item name, sorted, for tab completion.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Converter returns an item-name converter over this catalog, yielding Item
// values.
func (c *Catalog) Converter() converter.Converter {
	return func(arg string) (any, error) {
		item, ok := c.Lookup(arg)
		if !ok {
			return nil, fmt.Errorf("the provided value '%s' cannot be converted to an item", arg)
		}
		return item, nil
	}
}
