package svg

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	XLabel      string
	YLabel      string
	Color       string
	AxisColor   string
	GridColor   string
	EmptyText   string
	Padding     float64
	TickCount   int
	Percent     bool
}

// HeatmapOpts customises the heatmap renderer.
type HeatmapOpts struct {
	Title       string
	Description string
	XLabel      string
	YLabel      string
	Scale       []string
	AxisColor   string
	Padding     float64
}

// ScatterOpts customises the faceted scatter renderer.
type ScatterOpts struct {
	Title       string
	Description string
	XLabel      string
	YLabel      string
	FacetLabel  string
	Colors      map[string]string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	MinRadius   float64
	MaxRadius   float64
}

// Point is a single scatter mark.
type Point struct {
	X     float64
	Y     float64
	Size  float64
	Group string
}

// Facet is one scatter panel.
type Facet struct {
	Label  string
	Points []Point
}

// Defaults for the dashboard charts.
const (
	DefaultWidth   = 720
	DefaultHeight  = 320
	DefaultPadding = 48.0
	DefaultTicks   = 5
)
