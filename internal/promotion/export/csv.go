package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/odyssey-erp/promotion-dashboard/internal/promotion"
)

// WriteDistributionCSV serialises the promotion share per category value.
func WriteDistributionCSV(w io.Writer, category promotion.Category, dist promotion.Distribution) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{category.Title(), "Percentage"}); err != nil {
		return err
	}
	for _, share := range dist {
		if err := writer.Write([]string{share.Value, formatFloat(share.Share)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV prints the dashboard card figures.
func WriteSummaryCSV(w io.Writer, summary promotion.Summary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := [][]string{
		{"Metric", "Value"},
		{"Employees", strconv.Itoa(summary.Employees)},
		{"Promoted", strconv.Itoa(summary.Promoted)},
		{"Promotion Rate", formatFloat(summary.PromotionRate)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
