package catalog

// Tour is a bookable guided tour package.
type Tour struct {
	id          string
	name        string
	description string
	difficulty  string
	image       string
	duration    string
	price       string
}

// NewTour creates a catalog tour. duration and price are display-only.
func NewTour(id, name, description, difficulty, image, duration, price string) Tour {
	return Tour{
		id: id, name: name, description: description,
		difficulty: difficulty, image: image,
		duration: duration, price: price,
	}
}

// ID returns the tour identifier.
func (t Tour) ID() string { return t.id }

// Name returns the display name.
func (t Tour) Name() string { return t.name }

// Description returns the marketing description.
func (t Tour) Description() string { return t.description }

// Difficulty returns the difficulty label.
func (t Tour) Difficulty() string { return t.difficulty }

// Image returns the image reference.
func (t Tour) Image() string { return t.image }

// Duration returns the human-readable duration, e.g. "3 hours".
func (t Tour) Duration() string { return t.duration }

// Price returns the display price, e.g. "$149".
func (t Tour) Price() string { return t.price }
