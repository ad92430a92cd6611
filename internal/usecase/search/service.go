package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
	"github.com/kailas-cloud/dunerides/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/dunerides/internal/logger"
	"github.com/kailas-cloud/dunerides/internal/metrics"
)

// Service aggregates per-category catalog matches.
// Results are concatenated in category order with no re-ranking, dedup or paging.
type Service struct {
	catalog      CatalogReader
	includePosts bool
}

// New creates a search service over the given catalog.
func New(catalog CatalogReader) *Service {
	return &Service{catalog: catalog}
}

// WithPosts enables content posts as a third aggregated category.
func (s *Service) WithPosts(enabled bool) *Service {
	s.includePosts = enabled
	return s
}

// Search returns vehicle matches followed by tour matches (and post matches
// when enabled). A blank query returns an empty slice without scanning.
func (s *Service) Search(ctx context.Context, query string) []result.Result {
	q := strings.TrimSpace(query)
	if q == "" {
		metrics.SearchQueriesTotal.WithLabelValues("blank").Inc()
		return []result.Result{}
	}

	out := MatchVehicles(q, s.catalog.Vehicles())
	out = append(out, MatchTours(q, s.catalog.Tours())...)
	if s.includePosts {
		out = append(out, MatchPosts(q, s.catalog.Posts())...)
	}

	s.observe(ctx, q, len(out))
	return out
}

// SearchCategory runs a single category match. Post is allowed here even when
// posts are excluded from aggregated search.
func (s *Service) SearchCategory(ctx context.Context, query string, c category.Category) ([]result.Result, error) {
	if !c.IsValid() {
		_, err := category.Parse(string(c))
		return nil, fmt.Errorf("search category: %w", err)
	}

	q := strings.TrimSpace(query)
	if q == "" {
		metrics.SearchQueriesTotal.WithLabelValues("blank").Inc()
		return []result.Result{}, nil
	}

	var out []result.Result
	switch c {
	case category.Vehicle:
		out = MatchVehicles(q, s.catalog.Vehicles())
	case category.Tour:
		out = MatchTours(q, s.catalog.Tours())
	case category.Post:
		out = MatchPosts(q, s.catalog.Posts())
	}

	s.observe(ctx, q, len(out))
	return out, nil
}

func (s *Service) observe(ctx context.Context, q string, n int) {
	outcome := "hit"
	if n == 0 {
		outcome = "miss"
	}
	metrics.SearchQueriesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchResults.Observe(float64(n))

	logpkg.FromContext(ctx).Debug("search",
		zap.String("query", q),
		zap.Int("results", n),
	)
}
