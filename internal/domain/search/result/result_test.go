package result

import (
	"testing"

	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
)

func TestNew(t *testing.T) {
	r := New("1", category.Vehicle, "Desert Explorer Quad", "450cc", "/img/quad.jpg")

	if r.ID() != "1" {
		t.Errorf("ID() = %q", r.ID())
	}
	if r.Category() != category.Vehicle {
		t.Errorf("Category() = %q", r.Category())
	}
	if r.Title() != "Desert Explorer Quad" {
		t.Errorf("Title() = %q", r.Title())
	}
	if r.Description() != "450cc" {
		t.Errorf("Description() = %q", r.Description())
	}
	if r.Image() != "/img/quad.jpg" {
		t.Errorf("Image() = %q", r.Image())
	}
	if r.Link() != "/quad/1" {
		t.Errorf("Link() = %q", r.Link())
	}
}

func TestNew_TourLink(t *testing.T) {
	r := New("sunset-ride", category.Tour, "Sunset Ride", "", "")
	if r.Link() != "/tour/sunset-ride" {
		t.Errorf("Link() = %q", r.Link())
	}
}
