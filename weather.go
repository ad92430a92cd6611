package dunerides

import (
	"context"
	"fmt"
	"time"

	domweather "github.com/kailas-cloud/dunerides/internal/domain/weather"
	weatheruc "github.com/kailas-cloud/dunerides/internal/usecase/weather"
)

// WeatherService serves mock weather data after the configured latency.
type WeatherService struct {
	provider *weatheruc.Provider
	obs      *observer
}

// Current returns current conditions.
func (s *WeatherService) Current(ctx context.Context) (_ CurrentWeather, err error) {
	start := time.Now()
	defer func() { s.obs.observe("weather_current", start, err) }()

	c, err := s.provider.Current(ctx)
	if err != nil {
		return CurrentWeather{}, fmt.Errorf("dunerides: %w", err)
	}
	return fromCurrent(c), nil
}

// Forecast returns the 5-day forecast starting today.
func (s *WeatherService) Forecast(ctx context.Context) (_ []ForecastDay, err error) {
	start := time.Now()
	defer func() { s.obs.observe("weather_forecast", start, err) }()

	days, err := s.provider.Forecast(ctx)
	if err != nil {
		return nil, fmt.Errorf("dunerides: %w", err)
	}
	return fromDays(days), nil
}

// Snapshot returns location, current conditions and forecast in one call.
func (s *WeatherService) Snapshot(ctx context.Context) (_ Weather, err error) {
	start := time.Now()
	defer func() { s.obs.observe("weather_snapshot", start, err) }()

	snap, err := s.provider.Snapshot(ctx)
	if err != nil {
		return Weather{}, fmt.Errorf("dunerides: %w", err)
	}
	return Weather{
		Location: snap.Location,
		Current:  fromCurrent(snap.Current),
		Forecast: fromDays(snap.Forecast),
	}, nil
}

func fromCurrent(c domweather.Current) CurrentWeather {
	return CurrentWeather{
		Temperature: c.Temperature,
		Condition:   c.Condition,
		Icon:        c.Icon,
		Humidity:    c.Humidity,
		WindSpeed:   c.WindSpeed,
		UVIndex:     c.UVIndex,
	}
}

func fromDays(days []domweather.Day) []ForecastDay {
	out := make([]ForecastDay, len(days))
	for i, d := range days {
		out[i] = ForecastDay{
			Date:      d.Date,
			Offset:    d.Offset,
			MaxTemp:   d.MaxTemp,
			MinTemp:   d.MinTemp,
			Condition: d.Condition,
			Icon:      d.Icon,
		}
	}
	return out
}
