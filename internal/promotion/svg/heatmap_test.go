package svg

import (
	"strings"
	"testing"
)

func TestHeatmapProducesCells(t *testing.T) {
	counts := [][]int{{1, 0, 4}, {2, 3, 0}}
	html, err := Heatmap(480, 260, counts, []string{"1", "2", "3"}, []string{"Bachelor's", "Master's & above"}, HeatmapOpts{
		Title:  "Number of Employee by Previous Rating and Education",
		XLabel: "Previous Year Rating",
		YLabel: "Education",
	})
	if err != nil {
		t.Fatalf("heatmap renderer error: %v", err)
	}
	output := string(html)
	if strings.Count(output, "<rect") != 6 {
		t.Fatalf("expected six cells, got %s", output)
	}
	if !strings.Contains(output, "Master&#39;s &amp; above") {
		t.Fatalf("expected escaped y label")
	}
	// The densest cell takes the last palette stop.
	if !strings.Contains(output, "#e72a2b") {
		t.Fatalf("expected max color in output")
	}
}

func TestHeatmapRejectsRaggedRows(t *testing.T) {
	if _, err := Heatmap(400, 200, [][]int{{1}}, []string{"1", "2"}, []string{"a"}, HeatmapOpts{}); err == nil {
		t.Fatalf("expected ragged row error")
	}
}

func TestInterpolate(t *testing.T) {
	stops := [][3]float64{{0, 0, 0}, {255, 255, 255}}
	if got := interpolate(stops, 0.5); got != "#808080" {
		t.Fatalf("expected midpoint grey, got %s", got)
	}
	if got := interpolate(stops, 2); got != "#ffffff" {
		t.Fatalf("expected clamp to last stop, got %s", got)
	}
}
