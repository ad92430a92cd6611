package dunerides

import (
	"context"
	"fmt"
	"time"

	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
	"github.com/kailas-cloud/dunerides/internal/domain/search/result"
	searchuc "github.com/kailas-cloud/dunerides/internal/usecase/search"
)

// SearchService runs substring search over the catalog.
type SearchService struct {
	svc *searchuc.Service
	obs *observer
}

// Query returns vehicle hits followed by tour hits (and post hits when
// enabled). A blank query returns no results.
func (s *SearchService) Query(ctx context.Context, q string) []SearchResult {
	start := time.Now()
	defer func() { s.obs.observe("search", start, nil) }()

	return fromSearchResults(s.svc.Search(ctx, q))
}

// QueryCategory restricts the search to one category.
func (s *SearchService) QueryCategory(ctx context.Context, q string, c Category) (_ []SearchResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search_category", start, err) }()

	cat, err := category.Parse(string(c))
	if err != nil {
		return nil, fmt.Errorf("dunerides: %w", err)
	}
	results, err := s.svc.SearchCategory(ctx, q, cat)
	if err != nil {
		return nil, fmt.Errorf("dunerides: search %s: %w", c, err)
	}
	return fromSearchResults(results), nil
}

func fromSearchResults(results []result.Result) []SearchResult {
	out := make([]SearchResult, len(results))
	for i := range results {
		r := &results[i]
		out[i] = SearchResult{
			ID:          r.ID(),
			Category:    Category(r.Category()),
			Title:       r.Title(),
			Description: r.Description(),
			Image:       r.Image(),
			Link:        r.Link(),
		}
	}
	return out
}

func fromVehicle(v domcat.Vehicle) Vehicle {
	return Vehicle{
		ID:          v.ID(),
		Name:        v.Name(),
		Description: v.Description(),
		Type:        v.Kind(),
		Image:       v.Image(),
	}
}

func fromTour(t domcat.Tour) Tour {
	return Tour{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Difficulty:  t.Difficulty(),
		Image:       t.Image(),
		Duration:    t.Duration(),
		Price:       t.Price(),
	}
}

func fromPost(p domcat.Post) Post {
	return Post{
		ID:      p.ID(),
		Title:   p.Title(),
		Excerpt: p.Excerpt(),
		Tag:     p.Tag(),
		Image:   p.Image(),
	}
}
