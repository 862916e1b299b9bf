package item

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/osse101/Materials_Go/internal/domain"
)

// Catalog indexes item types by internal name. It is read-only after construction.
type Catalog struct {
	items map[string]domain.Item
	ids   []string
}

// NewCatalog indexes a validated configuration
func NewCatalog(config *Config) *Catalog {
	c := &Catalog{items: make(map[string]domain.Item)}
	if config == nil {
		return c
	}

	for _, def := range config.Items {
		c.items[def.InternalName] = domain.Item{
			InternalName:   def.InternalName,
			PublicName:     def.PublicName,
			DefaultDisplay: def.DefaultDisplay,
			Description:    def.Description,
			BaseValue:      def.BaseValue,
			MaxStack:       def.MaxStack,
			Types:          append(append([]string(nil), def.Tags...), def.Type...),
		}
	}

	c.ids = make([]string, 0, len(c.items))
	for id := range c.items {
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)

	slog.Debug(LogMsgCatalogLoaded, "items", len(c.ids), "version", config.Version)
	return c
}

// TypeIsDefined reports whether id names an item type. The "null" reference is always defined.
func (c *Catalog) TypeIsDefined(id string) bool {
	if id == domain.NullID {
		return true
	}
	_, ok := c.items[id]
	return ok
}

// Get returns the item type named id
func (c *Catalog) Get(id string) (domain.Item, error) {
	it, ok := c.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, id)
	}
	return it, nil
}

// IDs returns every internal name in lexical order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of item types
func (c *Catalog) Len() int {
	return len(c.items)
}
