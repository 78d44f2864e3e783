package promotion

import (
	"sort"
	"strconv"
)

// StaticDepartment is the department the fixed charts are drawn for.
const StaticDepartment = "HR"

// Palette used by the fixed charts.
var Palette = []string{"#f7e82e", "#4ca8e0", "#e72a2b"}

// Heatmap counts employees per (rating, education) cell.
// Counts is indexed [y][x].
type Heatmap struct {
	Title   string
	XLabel  string
	YLabel  string
	XLabels []string
	YLabels []string
	Counts  [][]int
	Scale   []string
}

// Max returns the largest cell count.
func (h Heatmap) Max() int {
	maxVal := 0
	for _, row := range h.Counts {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// ScatterPoint is a single employee on the service/score scatter.
type ScatterPoint struct {
	X     float64
	Y     float64
	Size  int
	Group string
}

// ScatterFacet is one panel of the scatter, keyed by promotion status.
type ScatterFacet struct {
	Label  string
	Points []ScatterPoint
}

// Scatter relates length of service to average training score.
type Scatter struct {
	Title      string
	XLabel     string
	YLabel     string
	ColorLabel string
	SizeLabel  string
	FacetLabel string
	Groups     []string
	Colors     map[string]string
	Facets     []ScatterFacet
}

// DepartmentSubset returns the records belonging to department.
func DepartmentSubset(table *Table, department string) *Table {
	return table.Filter(func(rec Record) bool { return rec.Department == department })
}

// RatingEducationHeatmap builds the previous-rating by education density grid.
func RatingEducationHeatmap(subset *Table) Heatmap {
	ratings := make(map[float64]struct{})
	educations := make(map[string]struct{})
	cells := make(map[string]map[float64]int)
	subset.Each(func(rec Record) {
		ratings[rec.PreviousYearRating] = struct{}{}
		educations[rec.Education] = struct{}{}
		row, ok := cells[rec.Education]
		if !ok {
			row = make(map[float64]int)
			cells[rec.Education] = row
		}
		row[rec.PreviousYearRating]++
	})

	xs := make([]float64, 0, len(ratings))
	for r := range ratings {
		xs = append(xs, r)
	}
	sort.Float64s(xs)
	ys := make([]string, 0, len(educations))
	for e := range educations {
		ys = append(ys, e)
	}
	sort.Strings(ys)

	hm := Heatmap{
		Title:   "Number of Employee by Previous Rating and Education",
		XLabel:  "Previous Year Rating",
		YLabel:  "Education",
		XLabels: make([]string, len(xs)),
		YLabels: ys,
		Counts:  make([][]int, len(ys)),
		Scale:   Palette,
	}
	for i, x := range xs {
		hm.XLabels[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	for yi, y := range ys {
		hm.Counts[yi] = make([]int, len(xs))
		for xi, x := range xs {
			hm.Counts[yi][xi] = cells[y][x]
		}
	}
	return hm
}

// ServiceTrainingScatter builds the length-of-service vs. training score scatter,
// colored by KPI flag and split into "No" and "Yes" promotion panels.
func ServiceTrainingScatter(subset *Table) Scatter {
	sc := Scatter{
		Title:      "The Relation of Length of Service and Average Training Score",
		XLabel:     "Length of Service",
		YLabel:     "Score",
		ColorLabel: "KPIs met >80%?",
		SizeLabel:  "No. of Trainings",
		FacetLabel: "Promoted Status",
		Colors:     make(map[string]string),
		Facets: []ScatterFacet{
			{Label: FlagNo},
			{Label: FlagYes},
		},
	}
	subset.Each(func(rec Record) {
		if _, ok := sc.Colors[rec.KPIsMet]; !ok {
			sc.Colors[rec.KPIsMet] = Palette[len(sc.Groups)%len(Palette)]
			sc.Groups = append(sc.Groups, rec.KPIsMet)
		}
		point := ScatterPoint{
			X:     float64(rec.LengthOfService),
			Y:     rec.AvgTrainingScore,
			Size:  rec.NoOfTrainings,
			Group: rec.KPIsMet,
		}
		facet := 0
		if rec.IsPromoted() {
			facet = 1
		}
		sc.Facets[facet].Points = append(sc.Facets[facet].Points, point)
	})
	return sc
}
