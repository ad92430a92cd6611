package search

import (
	"strings"

	"golang.org/x/text/cases"

	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
	"github.com/kailas-cloud/dunerides/internal/domain/search/result"
)

// matcher tests fields for a case-insensitive substring using Unicode case folding.
type matcher struct {
	folder cases.Caser
	needle string
}

// newMatcher reports false for a blank query. A non-blank query is matched
// as given; trimming is the caller's decision.
func newMatcher(query string) (matcher, bool) {
	if strings.TrimSpace(query) == "" {
		return matcher{}, false
	}
	f := cases.Fold()
	return matcher{folder: f, needle: f.String(query)}, true
}

func (m matcher) any(fields ...string) bool {
	for _, s := range fields {
		if strings.Contains(m.folder.String(s), m.needle) {
			return true
		}
	}
	return false
}

// MatchVehicles returns vehicles whose name, description or type contains query,
// in catalog order. A blank query matches nothing.
func MatchVehicles(query string, vehicles []domcat.Vehicle) []result.Result {
	m, ok := newMatcher(query)
	if !ok {
		return []result.Result{}
	}
	out := make([]result.Result, 0)
	for _, v := range vehicles {
		if m.any(v.Name(), v.Description(), v.Kind()) {
			out = append(out, result.New(v.ID(), category.Vehicle, v.Name(), v.Description(), v.Image()))
		}
	}
	return out
}

// MatchTours returns tours whose name, description or difficulty contains query,
// in catalog order. A blank query matches nothing.
func MatchTours(query string, tours []domcat.Tour) []result.Result {
	m, ok := newMatcher(query)
	if !ok {
		return []result.Result{}
	}
	out := make([]result.Result, 0)
	for _, t := range tours {
		if m.any(t.Name(), t.Description(), t.Difficulty()) {
			out = append(out, result.New(t.ID(), category.Tour, t.Name(), t.Description(), t.Image()))
		}
	}
	return out
}

// MatchPosts returns posts whose title, excerpt or tag contains query,
// in catalog order. A blank query matches nothing.
func MatchPosts(query string, posts []domcat.Post) []result.Result {
	m, ok := newMatcher(query)
	if !ok {
		return []result.Result{}
	}
	out := make([]result.Result, 0)
	for _, p := range posts {
		if m.any(p.Title(), p.Excerpt(), p.Tag()) {
			out = append(out, result.New(p.ID(), category.Post, p.Title(), p.Excerpt(), p.Image()))
		}
	}
	return out
}
