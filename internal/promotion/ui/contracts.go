package ui

import (
	"html/template"

	"github.com/odyssey-erp/promotion-dashboard/internal/promotion"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/svg"
)

// DashboardCards exposes the headline numbers for the summary cards.
type DashboardCards struct {
	Employees     int
	Promoted      int
	PromotionRate float64
}

// SelectOption is one entry of the category dropdown.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// PromotionRateChart is the rendered selector-driven chart.
type PromotionRateChart struct {
	Category string
	XLabel   string
	YLabel   string
	SVG      template.HTML
}

// DashboardViewModel combines all dashboard data for rendering.
type DashboardViewModel struct {
	Cards         DashboardCards
	Options       []SelectOption
	Selected      string
	Department    string
	PromotionRate PromotionRateChart
	HeatmapSVG    template.HTML
	ScatterSVG    template.HTML
}

// BarRenderer abstracts SVG bar chart rendering for the dashboard.
type BarRenderer interface {
	Bars(width, height int, values []float64, labels []string, opts svg.BarOpts) (template.HTML, error)
}

// HeatmapRenderer abstracts SVG heatmap rendering.
type HeatmapRenderer interface {
	Heatmap(width, height int, counts [][]int, xLabels, yLabels []string, opts svg.HeatmapOpts) (template.HTML, error)
}

// ScatterRenderer abstracts SVG scatter rendering.
type ScatterRenderer interface {
	Scatter(width, height int, facets []svg.Facet, opts svg.ScatterOpts) (template.HTML, error)
}

// ToCards converts the domain summary into card values.
func ToCards(s promotion.Summary) DashboardCards {
	return DashboardCards{Employees: s.Employees, Promoted: s.Promoted, PromotionRate: s.PromotionRate}
}

// ToOptions marks the selected category in the dropdown options.
func ToOptions(options []promotion.CategoryOption, selected promotion.Category) []SelectOption {
	out := make([]SelectOption, 0, len(options))
	for _, opt := range options {
		out = append(out, SelectOption{
			Value:    string(opt.Value),
			Label:    opt.Label,
			Selected: opt.Value == selected,
		})
	}
	return out
}

// ToFacets converts scatter panels into renderer facets.
func ToFacets(sc promotion.Scatter) []svg.Facet {
	facets := make([]svg.Facet, 0, len(sc.Facets))
	for _, f := range sc.Facets {
		points := make([]svg.Point, 0, len(f.Points))
		for _, p := range f.Points {
			points = append(points, svg.Point{X: p.X, Y: p.Y, Size: float64(p.Size), Group: p.Group})
		}
		facets = append(facets, svg.Facet{Label: f.Label, Points: points})
	}
	return facets
}
