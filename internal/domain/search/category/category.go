package category

import (
	"fmt"

	"github.com/kailas-cloud/dunerides/internal/domain"
)

// Category tags a search result with the entity kind it was derived from.
type Category string

// Category constants.
const (
	Vehicle Category = "vehicle"
	Tour    Category = "tour"
	// Post is a content post (blog article). Searched only when enabled.
	Post Category = "post"
)

// All lists categories in aggregation order.
var All = []Category{Vehicle, Tour, Post}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	return c == Vehicle || c == Tour || c == Post
}

// Parse converts a raw string into a Category.
func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCategory, s)
	}
	return c, nil
}

// LinkPrefix returns the site path prefix for entries of this category.
func (c Category) LinkPrefix() string {
	switch c {
	case Vehicle:
		return "/quad/"
	case Tour:
		return "/tour/"
	case Post:
		return "/blog/"
	default:
		return "/"
	}
}

// Link builds the navigable target path for an entry id.
func (c Category) Link(id string) string {
	return c.LinkPrefix() + id
}
