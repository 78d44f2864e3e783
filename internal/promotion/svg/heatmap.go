package svg

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Heatmap renders a density grid. counts is indexed [y][x] and must match the label sizes.
func Heatmap(width, height int, counts [][]int, xLabels, yLabels []string, opts HeatmapOpts) (template.HTML, error) {
	if len(counts) != len(yLabels) {
		return "", fmt.Errorf("svg: rows must match y labels")
	}
	for _, row := range counts {
		if len(row) != len(xLabels) {
			return "", fmt.Errorf("svg: columns must match x labels")
		}
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
	scale := opts.Scale
	if len(scale) == 0 {
		scale = []string{"#f7e82e", "#4ca8e0", "#e72a2b"}
	}
	stops := make([][3]float64, 0, len(scale))
	for _, hex := range scale {
		rgb, err := parseHex(hex)
		if err != nil {
			return "", err
		}
		stops = append(stops, rgb)
	}
	axisColor := fallback(opts.AxisColor, "#475569")

	// The y labels need more room than the tick values used elsewhere.
	left := padding * 2
	chartWidth := float64(width) - left - padding
	chartHeight := float64(height) - 2*padding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	var b strings.Builder
	header(&b, width, height, opts.Title, opts.Description, "heatmap", "Heatmap", "Density grid")
	if opts.Title != "" {
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"18\" fill=\"%s\" font-size=\"14\" text-anchor=\"start\">%s</text>", left, axisColor, template.HTMLEscapeString(opts.Title)))
	}

	if len(xLabels) == 0 || len(yLabels) == 0 {
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"12\" text-anchor=\"middle\">No data</text>", float64(width)/2, float64(height)/2, axisColor))
		b.WriteString("</svg>")
		return template.HTML(b.String()), nil
	}

	maxVal := 0
	for _, row := range counts {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	cellW := chartWidth / float64(len(xLabels))
	cellH := chartHeight / float64(len(yLabels))
	for yi, row := range counts {
		// Row 0 is drawn at the bottom.
		y := padding + chartHeight - float64(yi+1)*cellH
		for xi, v := range row {
			x := left + float64(xi)*cellW
			ratio := 0.0
			if maxVal > 0 {
				ratio = float64(v) / float64(maxVal)
			}
			fill := interpolate(stops, ratio)
			b.WriteString(fmt.Sprintf("<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\" aria-label=\"%s %s: %d\"></rect>", x, y, cellW, cellH, fill, template.HTMLEscapeString(yLabels[yi]), template.HTMLEscapeString(xLabels[xi]), v))
			b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#0f172a\" font-size=\"10\" text-anchor=\"middle\">%d</text>", x+cellW/2, y+cellH/2+4, v))
		}
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"end\">%s</text>", left-6, y+cellH/2+4, axisColor, template.HTMLEscapeString(yLabels[yi])))
	}
	for xi, label := range xLabels {
		x := left + float64(xi)*cellW + cellW/2
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"10\" text-anchor=\"middle\">%s</text>", x, padding+chartHeight+14, axisColor, template.HTMLEscapeString(label)))
	}

	axisTitles(&b, width, height, opts.XLabel, opts.YLabel, axisColor)
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func parseHex(hex string) ([3]float64, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return [3]float64{}, fmt.Errorf("svg: invalid color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return [3]float64{}, fmt.Errorf("svg: invalid color %q", hex)
	}
	return [3]float64{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, nil
}

// interpolate picks a color along evenly spaced stops for ratio in [0,1].
func interpolate(stops [][3]float64, ratio float64) string {
	if len(stops) == 1 {
		return toHex(stops[0])
	}
	if ratio <= 0 {
		return toHex(stops[0])
	}
	if ratio >= 1 {
		return toHex(stops[len(stops)-1])
	}
	pos := ratio * float64(len(stops)-1)
	i := int(pos)
	t := pos - float64(i)
	a, c := stops[i], stops[i+1]
	return toHex([3]float64{
		a[0] + (c[0]-a[0])*t,
		a[1] + (c[1]-a[1])*t,
		a[2] + (c[2]-a[2])*t,
	})
}

func toHex(rgb [3]float64) string {
	return fmt.Sprintf("#%02x%02x%02x", int(rgb[0]+0.5), int(rgb[1]+0.5), int(rgb[2]+0.5))
}
