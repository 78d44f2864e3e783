package svg

import (
	"strings"
	"testing"
)

func TestBarsProducesSVG(t *testing.T) {
	html, err := Bars(420, 220, []float64{0.75, 0.25}, []string{"Sales", "HR"}, BarOpts{
		Title:   "Which aspect have the highest promotion rate?",
		XLabel:  "Department",
		YLabel:  "Percentage",
		Percent: true,
	})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if strings.Count(output, "<rect") != 2 {
		t.Fatalf("expected two bars in svg: %s", output)
	}
	if !strings.Contains(output, "75%") {
		t.Fatalf("expected percentage label")
	}
	if !strings.Contains(output, "Percentage") {
		t.Fatalf("expected y axis title")
	}
}

func TestBarsEmptySeriesRendersPlaceholder(t *testing.T) {
	html, err := Bars(0, 0, nil, nil, BarOpts{EmptyText: "No promoted employees"})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	output := string(html)
	if strings.Contains(output, "<rect") {
		t.Fatalf("expected no bars for empty series")
	}
	if !strings.Contains(output, "No promoted employees") {
		t.Fatalf("expected placeholder text, got %s", output)
	}
}

func TestBarsRejectsMismatchedLabels(t *testing.T) {
	if _, err := Bars(400, 200, []float64{1}, []string{"a", "b"}, BarOpts{}); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestBarsEscapesLabels(t *testing.T) {
	html, err := Bars(400, 200, []float64{1}, []string{"<script>"}, BarOpts{})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected label to be escaped")
	}
}
