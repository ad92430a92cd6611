package search

import (
	"testing"

	domcat "github.com/kailas-cloud/dunerides/internal/domain/catalog"
	"github.com/kailas-cloud/dunerides/internal/domain/search/category"
)

func TestMatchVehicles_Fields(t *testing.T) {
	vs := []domcat.Vehicle{
		domcat.NewVehicle("n", "Falcon", "", "", ""),
		domcat.NewVehicle("d", "X", "falcon-grade suspension", "", ""),
		domcat.NewVehicle("k", "Y", "", "Falcon", ""),
		domcat.NewVehicle("none", "Z", "nothing here", "Sport", "falcon.jpg"),
	}

	got := MatchVehicles("FALCON", vs)
	if !equalStrings(ids(got), []string{"vehicle:n", "vehicle:d", "vehicle:k"}) {
		t.Errorf("got %v (image must not be searched)", ids(got))
	}
}

func TestMatchTours_Blank(t *testing.T) {
	ts := []domcat.Tour{domcat.NewTour("a", "A", "", "", "", "", "")}
	if got := MatchTours("", ts); len(got) != 0 {
		t.Errorf("blank query matched %v", ids(got))
	}
}

func TestMatchTours_PriceNotSearched(t *testing.T) {
	ts := []domcat.Tour{domcat.NewTour("a", "Dunes", "", "Easy", "", "3 hours", "$99")}
	if got := MatchTours("99", ts); len(got) != 0 {
		t.Errorf("price should not be searched, got %v", ids(got))
	}
	if got := MatchTours("easy", ts); len(got) != 1 {
		t.Errorf("difficulty should be searched, got %v", ids(got))
	}
}

func TestMatchPosts_ResultShape(t *testing.T) {
	ps := []domcat.Post{domcat.NewPost("weather", "Desert Weather", "Hot days", "Weather", "/img/w.jpg")}

	got := MatchPosts("hot", ps)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	r := got[0]
	if r.Category() != category.Post || r.Title() != "Desert Weather" || r.Description() != "Hot days" {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Link() != "/blog/weather" || r.Image() != "/img/w.jpg" {
		t.Errorf("link=%q image=%q", r.Link(), r.Image())
	}
}

func TestMatch_UnicodeFolding(t *testing.T) {
	vs := []domcat.Vehicle{domcat.NewVehicle("1", "Été Dune Rider", "", "", "")}
	if got := MatchVehicles("ÉTÉ DUNE", vs); len(got) != 1 {
		t.Errorf("expected case folding to match accented letters, got %v", ids(got))
	}
}

func TestMatchVehicles_QueryMatchedAsGiven(t *testing.T) {
	vs := []domcat.Vehicle{domcat.NewVehicle("1", "Dune Runner", "", "Sport", "")}

	if got := MatchVehicles("dune ", vs); len(got) != 1 {
		t.Errorf("inner space should match: got %d", len(got))
	}
	if got := MatchVehicles(" dune", vs); len(got) != 0 {
		t.Errorf("leading space is part of the needle: got %d", len(got))
	}
	if got := MatchVehicles(" \t", vs); len(got) != 0 {
		t.Errorf("blank query: got %d", len(got))
	}
}
