package chi

import (
	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
	"github.com/kailas-cloud/dunerides/internal/domain/search/result"
	"github.com/kailas-cloud/dunerides/internal/domain/session"
	domweather "github.com/kailas-cloud/dunerides/internal/domain/weather"
)

// ErrorResponseCode is the machine-readable error code.
type ErrorResponseCode string

// Error codes.
const (
	ErrorResponseCodeBadRequest      ErrorResponseCode = "bad_request"
	ErrorResponseCodeNotFound        ErrorResponseCode = "not_found"
	ErrorResponseCodeUnknownCategory ErrorResponseCode = "unknown_category"
	ErrorResponseCodeTimeout         ErrorResponseCode = "timeout"
	ErrorResponseCodeInternalError   ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q        *string `form:"q,omitempty" json:"q,omitempty"`
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// SearchResultItem is one search hit.
type SearchResultItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Query   string             `json:"query"`
	Results []SearchResultItem `json:"results"`
	Total   int                `json:"total"`
}

// WeatherCurrent is the current-conditions record.
type WeatherCurrent struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	UVIndex     int     `json:"uv_index"`
}

// ForecastDay is one forecast day.
type ForecastDay struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Offset    int     `json:"offset"`
	MaxTemp   float64 `json:"max_temp"`
	MinTemp   float64 `json:"min_temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}

// WeatherSnapshot is the body of GET /weather.
type WeatherSnapshot struct {
	Location string         `json:"location"`
	Current  WeatherCurrent `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}

// Vehicle is a catalog vehicle.
type Vehicle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// Tour is a catalog tour.
type Tour struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Image       string `json:"image"`
	Duration    string `json:"duration,omitempty"`
	Price       string `json:"price,omitempty"`
	Link        string `json:"link"`
}

// Account is the body of GET /account.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AdminOverview is the body of GET /admin/overview.
type AdminOverview struct {
	Vehicles int `json:"vehicles"`
	Tours    int `json:"tours"`
	Posts    int `json:"posts"`
}

// GuardPending is returned while the session is still resolving.
type GuardPending struct {
	State string `json:"state"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchResultToDTO(r *result.Result) SearchResultItem {
	return SearchResultItem{
		ID:          r.ID(),
		Category:    string(r.Category()),
		Title:       r.Title(),
		Description: r.Description(),
		Image:       r.Image(),
		Link:        r.Link(),
	}
}

func currentToDTO(c domweather.Current) WeatherCurrent {
	return WeatherCurrent{
		Temperature: c.Temperature,
		Condition:   c.Condition,
		Icon:        c.Icon,
		Humidity:    c.Humidity,
		WindSpeed:   c.WindSpeed,
		UVIndex:     c.UVIndex,
	}
}

func forecastToDTO(days []domweather.Day) []ForecastDay {
	out := make([]ForecastDay, len(days))
	for i, d := range days {
		out[i] = ForecastDay{
			Date:      d.Date.Format("2006-01-02"),
			Offset:    d.Offset,
			MaxTemp:   d.MaxTemp,
			MinTemp:   d.MinTemp,
			Condition: d.Condition,
			Icon:      d.Icon,
		}
	}
	return out
}

func vehicleToDTO(v domcat.Vehicle) Vehicle {
	return Vehicle{
		ID:          v.ID(),
		Name:        v.Name(),
		Description: v.Description(),
		Type:        v.Kind(),
		Image:       v.Image(),
		Link:        category.Vehicle.Link(v.ID()),
	}
}

func tourToDTO(t domcat.Tour) Tour {
	return Tour{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Difficulty:  t.Difficulty(),
		Image:       t.Image(),
		Duration:    t.Duration(),
		Price:       t.Price(),
		Link:        category.Tour.Link(t.ID()),
	}
}

func accountToDTO(u *session.User) Account {
	return Account{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}
