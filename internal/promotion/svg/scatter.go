package svg

import (
	"fmt"
	"html/template"
	"math"
	"sort"
	"strings"
)

// Scatter renders facets side by side sharing both axes. Marker radius scales
// with Point.Size between opts.MinRadius and opts.MaxRadius.
func Scatter(width, height int, facets []Facet, opts ScatterOpts) (template.HTML, error) {
	if len(facets) == 0 {
		return "", fmt.Errorf("svg: at least one facet required")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	tickCount := opts.TickCount
	if tickCount <= 0 {
		tickCount = DefaultTicks
	}
	minR := opts.MinRadius
	if minR <= 0 {
		minR = 2
	}
	maxR := opts.MaxRadius
	if maxR < minR {
		maxR = minR + 6
	}
	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5f5")

	const gap = 16.0
	panelWidth := (float64(width) - 2*padding - gap*float64(len(facets)-1)) / float64(len(facets))
	// Leave room for the legend on top.
	top := padding + 16
	chartHeight := float64(height) - top - padding
	if panelWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	var xs, ys, sizes []float64
	for _, f := range facets {
		for _, p := range f.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			sizes = append(sizes, p.Size)
		}
	}

	var b strings.Builder
	header(&b, width, height, opts.Title, opts.Description, "scatter", "Scatter chart", "Point relation")
	if opts.Title != "" {
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"18\" fill=\"%s\" font-size=\"14\" text-anchor=\"start\">%s</text>", padding, axisColor, template.HTMLEscapeString(opts.Title)))
	}
	if len(xs) == 0 {
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"12\" text-anchor=\"middle\">No data</text>", float64(width)/2, float64(height)/2, axisColor))
		b.WriteString("</svg>")
		return template.HTML(b.String()), nil
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	minS, maxS := bounds(sizes)
	if almostEqual(minX, maxX) {
		maxX = minX + 1
	}
	if almostEqual(minY, maxY) {
		maxY = minY + 1
	}

	radius := func(size float64) float64 {
		if almostEqual(minS, maxS) {
			return minR
		}
		return minR + (size-minS)/(maxS-minS)*(maxR-minR)
	}

	bottom := top + chartHeight
	for fi, facet := range facets {
		left := padding + float64(fi)*(panelWidth+gap)
		for i := 0; i <= tickCount; i++ {
			ratio := float64(i) / float64(tickCount)
			y := bottom - ratio*chartHeight
			b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"2,4\" aria-hidden=\"true\"></line>", left, y, left+panelWidth, y, gridColor))
			if fi == 0 {
				b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"end\">%s</text>", left-6, y+4, axisColor, template.HTMLEscapeString(formatTick(minY+(maxY-minY)*ratio, false))))
			}
			x := left + ratio*panelWidth
			b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, bottom+14, axisColor, template.HTMLEscapeString(formatTick(minX+(maxX-minX)*ratio, false))))
		}
		b.WriteString(fmt.Sprintf("<g stroke=\"%s\" aria-label=\"Axes\">", axisColor))
		b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", left, top, left, bottom))
		b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"1\"></line>", left, bottom, left+panelWidth, bottom))
		b.WriteString("</g>")

		facetTitle := facet.Label
		if opts.FacetLabel != "" {
			facetTitle = opts.FacetLabel + "=" + facet.Label
		}
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"11\" text-anchor=\"middle\">%s</text>", left+panelWidth/2, top-4, axisColor, template.HTMLEscapeString(facetTitle)))

		for _, p := range facet.Points {
			cx := left + (p.X-minX)/(maxX-minX)*panelWidth
			cy := bottom - (p.Y-minY)/(maxY-minY)*chartHeight
			fill := fallback(opts.Colors[p.Group], "#4ca8e0")
			b.WriteString(fmt.Sprintf("<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" fill-opacity=\"0.7\"></circle>", cx, cy, radius(p.Size), fill))
		}
	}

	groups := make([]string, 0, len(opts.Colors))
	for g := range opts.Colors {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	legendX := float64(width) - padding - 90*float64(len(groups))
	legendX = math.Max(legendX, padding)
	for _, g := range groups {
		b.WriteString(fmt.Sprintf("<circle cx=\"%.2f\" cy=\"30\" r=\"5\" fill=\"%s\"></circle>", legendX, opts.Colors[g]))
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"34\" fill=\"%s\" font-size=\"10\" text-anchor=\"start\">%s</text>", legendX+9, axisColor, template.HTMLEscapeString(g)))
		legendX += 90
	}

	axisTitles(&b, width, height, opts.XLabel, opts.YLabel, axisColor)
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
