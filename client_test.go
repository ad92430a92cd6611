package dunerides

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_DefaultCatalog(t *testing.T) {
	c, err := New(WithWeatherLatency(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Vehicles()) != 5 {
		t.Errorf("vehicles = %d, want 5", len(c.Vehicles()))
	}
	if len(c.Tours()) != 4 {
		t.Errorf("tours = %d, want 4", len(c.Tours()))
	}
	if len(c.Posts()) != 2 {
		t.Errorf("posts = %d, want 2", len(c.Posts()))
	}
}

func TestNew_MissingCatalogFile(t *testing.T) {
	_, err := New(WithCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestNew_InvalidCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("vehicles:\n  - id: a\n    name: A\n  - id: a\n    name: B\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := New(WithCatalogFile(path))
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("err = %v, want ErrInvalidCatalog", err)
	}
}

func TestSearch_Query(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	got := c.Search().Query(context.Background(), "DESERT")
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	if got[0].Category != CategoryVehicle || got[0].Link != "/quad/1" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Category != CategoryTour {
		t.Errorf("second = %+v", got[1])
	}

	if blank := c.Search().Query(context.Background(), "   "); len(blank) != 0 {
		t.Errorf("blank query returned %d results", len(blank))
	}
}

func TestSearch_WithPosts(t *testing.T) {
	off, _ := New()
	on, _ := New(WithPosts(true))

	ctx := context.Background()
	if n := len(off.Search().Query(ctx, "weather")); n != 0 {
		t.Errorf("posts disabled: %d results", n)
	}
	got := on.Search().Query(ctx, "weather")
	if len(got) != 1 || got[0].Category != CategoryPost || got[0].Link != "/blog/desert-weather-explained" {
		t.Errorf("posts enabled: %+v", got)
	}
}

func TestSearch_QueryCategory(t *testing.T) {
	c, _ := New()

	got, err := c.Search().QueryCategory(context.Background(), "desert", CategoryTour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "oasis-expedition" {
		t.Errorf("got %+v", got)
	}

	_, err = c.Search().QueryCategory(context.Background(), "desert", Category("boat"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestWeather_Snapshot(t *testing.T) {
	dubai := time.FixedZone("GST", 4*60*60)
	// 22:30 UTC on the 1st is already the 2nd in Dubai.
	now := time.Date(2026, 5, 1, 22, 30, 0, 0, time.UTC)

	c, err := New(
		WithWeatherLatency(0),
		WithTimeZone(dubai),
		WithClock(func() time.Time { return now }),
		WithLocation("Test Dunes"),
	)
	if err != nil {
		t.Fatal(err)
	}

	snap, err := c.Weather().Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Location != "Test Dunes" {
		t.Errorf("location = %q", snap.Location)
	}
	if len(snap.Forecast) != 5 {
		t.Fatalf("forecast = %d days", len(snap.Forecast))
	}
	if d := snap.Forecast[0].Date; d.Day() != 2 || d.Month() != time.May {
		t.Errorf("first day = %v, want May 2", d)
	}
}

func TestWeather_CancelledBeforeLatency(t *testing.T) {
	c, _ := New(WithWeatherLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Weather().Current(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
