package catalog

// Post is a content post (blog article) on the site.
type Post struct {
	id      string
	title   string
	excerpt string
	tag     string
	image   string
}

// NewPost creates a content post.
func NewPost(id, title, excerpt, tag, image string) Post {
	return Post{id: id, title: title, excerpt: excerpt, tag: tag, image: image}
}

// ID returns the post slug.
func (p Post) ID() string { return p.id }

// Title returns the headline.
func (p Post) Title() string { return p.title }

// Excerpt returns the short teaser text.
func (p Post) Excerpt() string { return p.excerpt }

// Tag returns the post tag.
func (p Post) Tag() string { return p.tag }

// Image returns the image reference.
func (p Post) Image() string { return p.image }
