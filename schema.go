package dunerides

import (
	"time"

	"github.com/kailas-cloud/dunerides/internal/domain"
)

// Category of a search hit.
type Category string

// Search categories.
const (
	CategoryVehicle Category = "vehicle"
	CategoryTour    Category = "tour"
	CategoryPost    Category = "post"
)

// Errors returned by the client.
var (
	ErrUnknownCategory = domain.ErrUnknownCategory
	ErrInvalidCatalog  = domain.ErrInvalidCatalog
)

// SearchResult is one search hit with its display fields and site link.
type SearchResult struct {
	ID          string
	Category    Category
	Title       string
	Description string
	Image       string
	Link        string
}

// Vehicle is a rideable vehicle from the catalog.
type Vehicle struct {
	ID          string
	Name        string
	Description string
	Type        string
	Image       string
}

// Tour is a bookable tour package.
type Tour struct {
	ID          string
	Name        string
	Description string
	Difficulty  string
	Image       string
	Duration    string
	Price       string
}

// Post is a content post.
type Post struct {
	ID      string
	Title   string
	Excerpt string
	Tag     string
	Image   string
}

// CurrentWeather is the current-conditions record.
type CurrentWeather struct {
	Temperature float64
	Condition   string
	Icon        string
	Humidity    int
	WindSpeed   float64
	UVIndex     int
}

// ForecastDay is one day of the forecast. Offset 0 is today.
type ForecastDay struct {
	Date      time.Time
	Offset    int
	MaxTemp   float64
	MinTemp   float64
	Condition string
	Icon      string
}

// Weather bundles location, current conditions and forecast.
type Weather struct {
	Location string
	Current  CurrentWeather
	Forecast []ForecastDay
}
