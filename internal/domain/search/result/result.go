package result

import "github.com/kailas-cloud/dunerides/internal/domain/search/category"

// Result is a display-ready projection of a catalog entry.
type Result struct {
	id          string
	category    category.Category
	title       string
	description string
	image       string
	link        string
}

// New creates a search result. The link is derived from the category and id.
func New(id string, c category.Category, title, description, image string) Result {
	return Result{
		id: id, category: c, title: title,
		description: description, image: image,
		link: c.Link(id),
	}
}

// ID returns the source entry identifier.
func (r *Result) ID() string { return r.id }

// Category returns the category tag.
func (r *Result) Category() category.Category { return r.category }

// Title returns the display title.
func (r *Result) Title() string { return r.title }

// Description returns the display description.
func (r *Result) Description() string { return r.description }

// Image returns the image reference.
func (r *Result) Image() string { return r.image }

// Link returns the navigable target path.
func (r *Result) Link() string { return r.link }
