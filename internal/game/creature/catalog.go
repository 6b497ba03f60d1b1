package creature

import (
	"fmt"
	"sort"
)

// Catalog indexes creature templates by id and by tile. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	byID   map[string]*Template
	byTile map[string]*Template
}

// NewCatalog indexes templates.
//
// Precondition: every template has passed Validate.
// Postcondition: Returns an error on a duplicate id or tile, or a leader id
// that names no template.
func NewCatalog(templates []*Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Template), byTile: make(map[string]*Template)}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("creature catalog: duplicate id %q", t.ID)
		}
		if prev, dup := c.byTile[t.Tile]; dup {
			return nil, fmt.Errorf("creature catalog: tile %q used by %q and %q", t.Tile, prev.ID, t.ID)
		}
		c.byID[t.ID] = t
		c.byTile[t.Tile] = t
	}
	for _, t := range templates {
		if t.Leader != "" {
			if _, ok := c.byID[t.Leader]; !ok {
				return nil, fmt.Errorf("creature catalog: %q has unknown leader %q", t.ID, t.Leader)
			}
		}
	}
	return c, nil
}

// LoadCatalog loads every template in dir into a Catalog.
func LoadCatalog(dir string) (*Catalog, error) {
	templates, err := LoadTemplates(dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(templates)
}

// ByID returns the template with id.
func (c *Catalog) ByID(id string) (*Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// ByTile returns the template drawn with tile.
func (c *Catalog) ByTile(tile string) (*Template, bool) {
	t, ok := c.byTile[tile]
	return t, ok
}

// Leader returns the template t is recruited under, or t itself when it has none.
//
// Precondition: t must not be nil.
func (c *Catalog) Leader(t *Template) *Template {
	if t.Leader == "" {
		return t
	}
	if l, ok := c.byID[t.Leader]; ok {
		return l
	}
	return t
}

// IDs returns every template id in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
