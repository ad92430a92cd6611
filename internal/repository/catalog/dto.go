package catalog

import domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"

// fileRow is the YAML layout of a catalog file.
type fileRow struct {
	Vehicles []vehicleRow `yaml:"vehicles"`
	Tours    []tourRow    `yaml:"tours"`
	Posts    []postRow    `yaml:"posts"`
}

type vehicleRow struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Image       string `yaml:"image"`
}

type tourRow struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
	Image       string `yaml:"image"`
	Duration    string `yaml:"duration"`
	Price       string `yaml:"price"`
}

type postRow struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Excerpt string `yaml:"excerpt"`
	Tag     string `yaml:"tag"`
	Image   string `yaml:"image"`
}

// toDomain hydrates a validated domain catalog from the decoded file.
func (f *fileRow) toDomain() (domcat.Catalog, error) {
	vehicles := make([]domcat.Vehicle, len(f.Vehicles))
	for i, v := range f.Vehicles {
		vehicles[i] = domcat.NewVehicle(v.ID, v.Name, v.Description, v.Type, v.Image)
	}

	tours := make([]domcat.Tour, len(f.Tours))
	for i, t := range f.Tours {
		tours[i] = domcat.NewTour(t.ID, t.Name, t.Description, t.Difficulty, t.Image, t.Duration, t.Price)
	}

	posts := make([]domcat.Post, len(f.Posts))
	for i, p := range f.Posts {
		posts[i] = domcat.NewPost(p.ID, p.Title, p.Excerpt, p.Tag, p.Image)
	}

	return domcat.New(vehicles, tours, posts)
}
