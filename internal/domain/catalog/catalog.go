package catalog

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/dunerides/internal/domain"
)

// Catalog is the immutable set of entries served by the site.
// Built once at startup; accessors hand out copies so callers cannot mutate it.
type Catalog struct {
	vehicles []Vehicle
	tours    []Tour
	posts    []Post
}

// New validates and creates a Catalog.
func New(vehicles []Vehicle, tours []Tour, posts []Post) (Catalog, error) {
	c := Catalog{
		vehicles: slices.Clone(vehicles),
		tours:    slices.Clone(tours),
		posts:    slices.Clone(posts),
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Vehicles returns the vehicles in catalog order.
func (c Catalog) Vehicles() []Vehicle { return slices.Clone(c.vehicles) }

// Tours returns the tours in catalog order.
func (c Catalog) Tours() []Tour { return slices.Clone(c.tours) }

// Posts returns the content posts in catalog order.
func (c Catalog) Posts() []Post { return slices.Clone(c.posts) }

// IsEmpty reports whether the catalog has no vehicles and no tours.
func (c Catalog) IsEmpty() bool {
	return len(c.vehicles) == 0 && len(c.tours) == 0
}

// Validate checks ids are present and unique per kind, and names are set.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.vehicles))
	for i, v := range c.vehicles {
		if err := checkEntry("vehicle", i, v.id, v.name, seen); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(c.tours))
	for i, t := range c.tours {
		if err := checkEntry("tour", i, t.id, t.name, seen); err != nil {
			return err
		}
	}

	seen = make(map[string]struct{}, len(c.posts))
	for i, p := range c.posts {
		if err := checkEntry("post", i, p.id, p.title, seen); err != nil {
			return err
		}
	}
	return nil
}

func checkEntry(kind string, idx int, id, name string, seen map[string]struct{}) error {
	if id == "" {
		return fmt.Errorf("%w: %s #%d has no id", domain.ErrInvalidCatalog, kind, idx)
	}
	if name == "" {
		return fmt.Errorf("%w: %s %q has no name", domain.ErrInvalidCatalog, kind, id)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate %s id %q", domain.ErrInvalidCatalog, kind, id)
	}
	seen[id] = struct{}{}
	return nil
}
