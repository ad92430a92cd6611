package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dunerides/internal/domain"
	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
	"github.com/kailas-cloud/dunerides/internal/domain/search/result"
	domweather "github.com/kailas-cloud/dunerides/internal/domain/weather"
	"github.com/kailas-cloud/dunerides/internal/usecase/guard"
	healthuc "github.com/kailas-cloud/dunerides/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Searcher runs catalog search.
type Searcher interface {
	Search(ctx context.Context, query string) []result.Result
	SearchCategory(ctx context.Context, query string, c category.Category) ([]result.Result, error)
}

// WeatherSource provides weather data. The mock provider satisfies it; a live
// integration can replace it without touching handlers.
type WeatherSource interface {
	Current(ctx context.Context) (domweather.Current, error)
	Forecast(ctx context.Context) ([]domweather.Day, error)
	Snapshot(ctx context.Context) (domweather.Snapshot, error)
}

// CatalogReader serves catalog listings and lookups.
type CatalogReader interface {
	Vehicles() []domcat.Vehicle
	Tours() []domcat.Tour
	Posts() []domcat.Post
	Vehicle(id string) (domcat.Vehicle, error)
	Tour(id string) (domcat.Tour, error)
}

// Guards are the access guards for protected route groups.
type Guards struct {
	User       *guard.Guard
	Admin      *guard.Guard
	CookieName string
}

// Server serves the site JSON API.
type Server struct {
	search        Searcher
	weather       WeatherSource
	catalog       CatalogReader
	health        *healthuc.Service
	guards        Guards
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search Searcher,
	weather WeatherSource,
	catalog CatalogReader,
	health *healthuc.Service,
	guards Guards,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		weather: weather,
		catalog: catalog,
		health:  health,
		guards:  guards,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrUnknownCategory, http.StatusBadRequest, ErrorResponseCodeUnknownCategory),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorResponseCodeBadRequest),
		sentinelHandler(context.DeadlineExceeded, http.StatusGatewayTimeout, ErrorResponseCodeTimeout),
	}
	return s
}

// Register mounts all routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/search", s.Search)

	r.Get("/weather", s.GetWeather)
	r.Get("/weather/current", s.GetCurrentWeather)
	r.Get("/weather/forecast", s.GetForecast)

	r.Get("/vehicles", s.ListVehicles)
	r.Get("/vehicles/{id}", s.GetVehicle)
	r.Get("/tours", s.ListTours)
	r.Get("/tours/{id}", s.GetTour)

	if s.guards.User != nil {
		r.With(GuardMiddleware(s.guards.User, s.guards.CookieName)).Get("/account", s.GetAccount)
	}
	if s.guards.Admin != nil {
		r.With(GuardMiddleware(s.guards.Admin, s.guards.CookieName)).Get("/admin/overview", s.GetAdminOverview)
	}
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var params SearchParams

	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Q); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "Invalid format for parameter q: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter(
		"form", true, false, "category", r.URL.Query(), &params.Category,
	); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest,
			"Invalid format for parameter category: "+err.Error())
		return
	}

	query := derefString(params.Q)

	var results []result.Result
	if params.Category != nil && *params.Category != "" {
		c, err := category.Parse(*params.Category)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		results, err = s.search.SearchCategory(r.Context(), query, c)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
	} else {
		results = s.search.Search(r.Context(), query)
	}

	items := make([]SearchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToDTO(&results[i])
	}

	writeJSON(w, http.StatusOK, SearchResponse{Query: query, Results: items, Total: len(items)})
}

// GetWeather handles GET /weather.
func (s *Server) GetWeather(w http.ResponseWriter, r *http.Request) {
	snap, err := s.weather.Snapshot(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WeatherSnapshot{
		Location: snap.Location,
		Current:  currentToDTO(snap.Current),
		Forecast: forecastToDTO(snap.Forecast),
	})
}

// GetCurrentWeather handles GET /weather/current.
func (s *Server) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	cur, err := s.weather.Current(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currentToDTO(cur))
}

// GetForecast handles GET /weather/forecast.
func (s *Server) GetForecast(w http.ResponseWriter, r *http.Request) {
	days, err := s.weather.Forecast(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, forecastToDTO(days))
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(w http.ResponseWriter, _ *http.Request) {
	vs := s.catalog.Vehicles()
	items := make([]Vehicle, len(vs))
	for i, v := range vs {
		items[i] = vehicleToDTO(v)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := s.catalog.Vehicle(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleToDTO(v))
}

// ListTours handles GET /tours.
func (s *Server) ListTours(w http.ResponseWriter, _ *http.Request) {
	ts := s.catalog.Tours()
	items := make([]Tour, len(ts))
	for i, t := range ts {
		items[i] = tourToDTO(t)
	}
	writeJSON(w, http.StatusOK, items)
}

// GetTour handles GET /tours/{id}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	t, err := s.catalog.Tour(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tourToDTO(t))
}

// GetAccount handles GET /account (any signed-in user).
func (s *Server) GetAccount(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		// only reachable if the route was mounted without its guard
		s.logger.Error("account handler reached without user")
		writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, accountToDTO(u))
}

// GetAdminOverview handles GET /admin/overview (admins only).
func (s *Server) GetAdminOverview(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, AdminOverview{
		Vehicles: len(s.catalog.Vehicles()),
		Tours:    len(s.catalog.Tours()),
		Posts:    len(s.catalog.Posts()),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: string(report.Status), Checks: checks})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrUnknownCategory,
		domain.ErrInvalidQuery,
		context.DeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
