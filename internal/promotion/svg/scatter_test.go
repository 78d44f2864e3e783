package svg

import (
	"strings"
	"testing"
)

func TestScatterRendersFacets(t *testing.T) {
	facets := []Facet{
		{Label: "No", Points: []Point{{X: 1, Y: 50, Size: 1, Group: "No"}, {X: 7, Y: 60, Size: 3, Group: "Yes"}}},
		{Label: "Yes", Points: []Point{{X: 4, Y: 80, Size: 2, Group: "Yes"}}},
	}
	html, err := Scatter(720, 320, facets, ScatterOpts{
		Title:      "The Relation of Length of Service and Average Training Score",
		FacetLabel: "Promoted Status",
		Colors:     map[string]string{"No": "#f7e82e", "Yes": "#4ca8e0"},
	})
	if err != nil {
		t.Fatalf("scatter renderer error: %v", err)
	}
	output := string(html)
	// Three points plus two legend markers.
	if strings.Count(output, "<circle") != 5 {
		t.Fatalf("expected five circles, got %s", output)
	}
	if !strings.Contains(output, "Promoted Status=Yes") {
		t.Fatalf("expected facet title")
	}
}

func TestScatterRequiresFacet(t *testing.T) {
	if _, err := Scatter(400, 200, nil, ScatterOpts{}); err == nil {
		t.Fatalf("expected error without facets")
	}
}
