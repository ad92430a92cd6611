package category

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/dunerides/internal/domain"
)

func TestIsValid(t *testing.T) {
	for _, c := range All {
		if !c.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", c)
		}
	}

	invalid := []Category{"", "VEHICLE", "vehicles", "content"}
	for _, c := range invalid {
		if c.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", c)
		}
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("tour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Tour {
		t.Errorf("Parse(tour) = %q", c)
	}

	_, err = Parse("boat")
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		c    Category
		id   string
		want string
	}{
		{Vehicle, "3", "/quad/3"},
		{Tour, "sunset", "/tour/sunset"},
		{Post, "safety-tips", "/blog/safety-tips"},
	}
	for _, tc := range tests {
		if got := tc.c.Link(tc.id); got != tc.want {
			t.Errorf("%q.Link(%q) = %q, want %q", tc.c, tc.id, got, tc.want)
		}
	}
}
