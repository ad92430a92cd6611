// Package weather serves the fixed weather snapshot for the tour location.
// Values are constants standing in for a live integration; each accessor
// waits a simulated network latency before resolving.
package weather

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	domweather "github.com/kailas-cloud/dunerides/internal/domain/weather"
	"github.com/kailas-cloud/dunerides/internal/metrics"
)

// DefaultLatency is the simulated upstream latency.
const DefaultLatency = 500 * time.Millisecond

// ForecastDays is the forecast horizon, today included.
const ForecastDays = 5

// DefaultLocation labels the snapshot when none is configured.
const DefaultLocation = "Liwa Desert, UAE"

var current = domweather.Current{
	Temperature: 32,
	Condition:   "Sunny",
	Icon:        "☀️",
	Humidity:    25,
	WindSpeed:   12,
	UVIndex:     9,
}

// forecastTable holds the per-offset values; dates are filled in per call.
var forecastTable = [ForecastDays]domweather.Day{
	{MaxTemp: 34, MinTemp: 22, Condition: "Sunny", Icon: "☀️"},
	{MaxTemp: 35, MinTemp: 23, Condition: "Sunny", Icon: "☀️"},
	{MaxTemp: 33, MinTemp: 21, Condition: "Partly Cloudy", Icon: "⛅"},
	{MaxTemp: 31, MinTemp: 20, Condition: "Windy", Icon: "💨"},
	{MaxTemp: 33, MinTemp: 22, Condition: "Sunny", Icon: "☀️"},
}

// Provider resolves the fixed snapshot after a simulated delay.
type Provider struct {
	location string
	latency  time.Duration
	zone     *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// New creates a weather provider. A negative latency is treated as zero.
func New(location string, latency time.Duration, logger *zap.Logger) *Provider {
	if location == "" {
		location = DefaultLocation
	}
	if latency < 0 {
		latency = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		location: location,
		latency:  latency,
		zone:     time.UTC,
		now:      time.Now,
		logger:   logger,
	}
}

// WithTimeZone sets the zone in which forecast days start.
func (p *Provider) WithTimeZone(zone *time.Location) *Provider {
	if zone != nil {
		p.zone = zone
	}
	return p
}

// WithClock overrides the time source (tests).
func (p *Provider) WithClock(now func() time.Time) *Provider {
	if now != nil {
		p.now = now
	}
	return p
}

// Current returns current conditions.
func (p *Provider) Current(ctx context.Context) (domweather.Current, error) {
	if err := p.wait(ctx, "current"); err != nil {
		return domweather.Current{}, err
	}
	return current, nil
}

// Forecast returns the 5-day forecast starting today.
func (p *Provider) Forecast(ctx context.Context) ([]domweather.Day, error) {
	if err := p.wait(ctx, "forecast"); err != nil {
		return nil, err
	}
	return p.forecast(), nil
}

// Snapshot returns location, current conditions and forecast together.
func (p *Provider) Snapshot(ctx context.Context) (domweather.Snapshot, error) {
	if err := p.wait(ctx, "snapshot"); err != nil {
		return domweather.Snapshot{}, err
	}
	return domweather.Snapshot{
		Location: p.location,
		Current:  current,
		Forecast: p.forecast(),
	}, nil
}

// forecast stamps the fixed table with today+offset, recomputed on every call.
func (p *Provider) forecast() []domweather.Day {
	y, m, d := p.now().In(p.zone).Date()

	days := make([]domweather.Day, ForecastDays)
	for i, row := range forecastTable {
		row.Offset = i
		row.Date = time.Date(y, m, d+i, 0, 0, 0, 0, p.zone)
		days[i] = row
	}
	return days
}

// wait blocks for the simulated latency. It only fails if ctx ends first.
func (p *Provider) wait(ctx context.Context, accessor string) error {
	if p.latency > 0 {
		timer := time.NewTimer(p.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			metrics.WeatherCallsTotal.WithLabelValues(accessor, "cancelled").Inc()
			p.logger.Debug("weather call cancelled",
				zap.String("accessor", accessor),
				zap.Error(ctx.Err()),
			)
			return fmt.Errorf("weather %s: %w", accessor, ctx.Err())
		case <-timer.C:
		}
	}
	metrics.WeatherCallsTotal.WithLabelValues(accessor, "ok").Inc()
	return nil
}
