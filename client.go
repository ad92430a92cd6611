// Package dunerides runs the site's catalog search and weather provider
// in-process, without the HTTP server.
package dunerides

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	catalogrepo "github.com/kailas-cloud/dunerides/internal/repository/catalog"
	searchuc "github.com/kailas-cloud/dunerides/internal/usecase/search"
	weatheruc "github.com/kailas-cloud/dunerides/internal/usecase/weather"
)

// Client is the dunerides SDK entry point.
type Client struct {
	catalog   *catalogrepo.Repo
	searchSvc *searchuc.Service
	weather   *weatheruc.Provider
	obs       *observer
}

// New loads the catalog and wires search and weather.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		weatherLatency: weatheruc.DefaultLatency,
		zone:           time.UTC,
		logger:         zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	repo, err := catalogrepo.Load(cfg.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("dunerides: load catalog: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	weather := weatheruc.New(cfg.location, cfg.weatherLatency, cfg.logger).WithTimeZone(cfg.zone)
	if cfg.now != nil {
		weather = weather.WithClock(cfg.now)
	}

	return &Client{
		catalog:   repo,
		searchSvc: searchuc.New(repo).WithPosts(cfg.includePosts),
		weather:   weather,
		obs:       obs,
	}, nil
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}

// Weather returns the weather service.
func (c *Client) Weather() *WeatherService {
	return &WeatherService{provider: c.weather, obs: c.obs}
}

// Vehicles lists the rideable vehicles in catalog order.
func (c *Client) Vehicles() []Vehicle {
	vs := c.catalog.Vehicles()
	out := make([]Vehicle, len(vs))
	for i, v := range vs {
		out[i] = fromVehicle(v)
	}
	return out
}

// Tours lists the bookable tours in catalog order.
func (c *Client) Tours() []Tour {
	ts := c.catalog.Tours()
	out := make([]Tour, len(ts))
	for i, t := range ts {
		out[i] = fromTour(t)
	}
	return out
}

// Posts lists the content posts in catalog order.
func (c *Client) Posts() []Post {
	ps := c.catalog.Posts()
	out := make([]Post, len(ps))
	for i, p := range ps {
		out[i] = fromPost(p)
	}
	return out
}
