package dunerides

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	catalogPath    string
	includePosts   bool
	location       string
	weatherLatency time.Duration
	zone           *time.Location
	now            func() time.Time
	logger         *zap.Logger
	metricsReg     prometheus.Registerer
}

// WithCatalogFile loads the catalog from a YAML file instead of the built-in one.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithPosts adds content posts to search results, after vehicles and tours.
func WithPosts(enabled bool) Option {
	return func(c *clientConfig) {
		c.includePosts = enabled
	}
}

// WithWeatherLatency sets the simulated weather delay. Zero disables it.
func WithWeatherLatency(d time.Duration) Option {
	return func(c *clientConfig) {
		c.weatherLatency = d
	}
}

// WithLocation sets the weather location label.
func WithLocation(name string) Option {
	return func(c *clientConfig) {
		c.location = name
	}
}

// WithTimeZone sets the zone in which forecast days start.
func WithTimeZone(zone *time.Location) Option {
	return func(c *clientConfig) {
		if zone != nil {
			c.zone = zone
		}
	}
}

// WithClock overrides the time source used to date the forecast.
func WithClock(now func() time.Time) Option {
	return func(c *clientConfig) {
		c.now = now
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics registers SDK operation metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.metricsReg = reg
	}
}
