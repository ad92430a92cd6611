package dunerides

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserver_CountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(WithMetrics(reg), WithWeatherLatency(0))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	c.Search().Query(ctx, "quad")
	_, _ = c.Search().QueryCategory(ctx, "quad", Category("boat"))
	if _, err := c.Weather().Current(ctx); err != nil {
		t.Fatal(err)
	}

	ops := c.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("search", "ok")); got != 1 {
		t.Errorf("search ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("search_category", "error")); got != 1 {
		t.Errorf("search_category error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("weather_current", "ok")); got != 1 {
		t.Errorf("weather_current ok = %v, want 1", got)
	}
}

func TestObserver_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(WithMetrics(reg)); err != nil {
		t.Fatal(err)
	}
	if _, err := New(WithMetrics(reg)); err != nil {
		t.Fatalf("second client on same registry: %v", err)
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var o *observer
	o.observe("noop", time.Time{}, nil)
}
