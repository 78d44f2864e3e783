package promotion

import (
	"math"
	"sort"
)

// Chart constants for the promotion-rate bar chart.
const (
	PromotionRateTitle = "Which aspect have the highest promotion rate?"
	PromotionRateYAxis = "Percentage"
	PromotionRateColor = "#4ca8e0"
)

// Share is the fraction of promoted records holding Value.
type Share struct {
	Value string  `json:"value"`
	Share float64 `json:"share"`
}

// Distribution is ordered by descending frequency.
type Distribution []Share

// Sum adds the rounded shares.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, s := range d {
		total += s.Share
	}
	return total
}

// BarChart describes the promotion-rate chart independent of rendering.
type BarChart struct {
	Category Category  `json:"category"`
	Title    string    `json:"title"`
	XLabel   string    `json:"x_label"`
	YLabel   string    `json:"y_label"`
	Labels   []string  `json:"labels"`
	Values   []float64 `json:"values"`
	Color    string    `json:"color"`
}

// Empty reports whether the chart has no bars.
func (c BarChart) Empty() bool {
	return len(c.Labels) == 0
}

// Responder recomputes the promotion-rate chart for a selected category.
type Responder struct {
	promoted *Table
}

// NewResponder captures the promoted subset of table.
func NewResponder(table *Table) *Responder {
	return &Responder{promoted: table.Filter(Record.IsPromoted)}
}

// Distribution groups promoted records by category and returns each group's share of
// the promoted total, rounded to two decimals. Ties keep first-appearance order.
func (r *Responder) Distribution(category Category) (Distribution, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}
	total := r.promoted.Len()
	if total == 0 {
		return Distribution{}, nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	var valueErr error
	r.promoted.Each(func(rec Record) {
		if valueErr != nil {
			return
		}
		value, err := category.Value(rec)
		if err != nil {
			valueErr = err
			return
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	})
	if valueErr != nil {
		return nil, valueErr
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	dist := make(Distribution, 0, len(order))
	for _, value := range order {
		dist = append(dist, Share{
			Value: value,
			Share: round2(float64(counts[value]) / float64(total)),
		})
	}
	return dist, nil
}

// Chart builds the bar chart specification for category.
func (r *Responder) Chart(category Category) (BarChart, error) {
	dist, err := r.Distribution(category)
	if err != nil {
		return BarChart{}, err
	}
	chart := BarChart{
		Category: category,
		Title:    PromotionRateTitle,
		XLabel:   category.Title(),
		YLabel:   PromotionRateYAxis,
		Labels:   make([]string, 0, len(dist)),
		Values:   make([]float64, 0, len(dist)),
		Color:    PromotionRateColor,
	}
	for _, s := range dist {
		chart.Labels = append(chart.Labels, s.Value)
		chart.Values = append(chart.Values, s.Share)
	}
	return chart, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
