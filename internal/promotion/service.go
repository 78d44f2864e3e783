package promotion

import (
	"time"

	"github.com/google/uuid"
)

// Service holds the loaded dataset and everything derived from it once at startup.
// Only the promotion-rate chart is recomputed per request.
type Service struct {
	table      *Table
	responder  *Responder
	summary    Summary
	department string
	heatmap    Heatmap
	scatter    Scatter
}

// NewService precomputes the summary cards and the fixed department charts.
func NewService(table *Table, department string) *Service {
	if department == "" {
		department = StaticDepartment
	}
	subset := DepartmentSubset(table, department)
	return &Service{
		table:      table,
		responder:  NewResponder(table),
		summary:    Summarize(table),
		department: department,
		heatmap:    RatingEducationHeatmap(subset),
		scatter:    ServiceTrainingScatter(subset),
	}
}

// Snapshot identifies the loaded dataset.
func (s *Service) Snapshot() uuid.UUID { return s.table.ID() }

// LoadedAt reports when the dataset was loaded.
func (s *Service) LoadedAt() time.Time { return s.table.LoadedAt() }

// Summary returns the card figures.
func (s *Service) Summary() Summary { return s.summary }

// Department returns the department used for the fixed charts.
func (s *Service) Department() string { return s.department }

// Categories returns the selector options.
func (s *Service) Categories() []CategoryOption { return Categories() }

// PromotionRate recomputes the bar chart for category.
func (s *Service) PromotionRate(category Category) (BarChart, error) {
	return s.responder.Chart(category)
}

// Distribution recomputes the raw shares for category.
func (s *Service) Distribution(category Category) (Distribution, error) {
	return s.responder.Distribution(category)
}

// Heatmap returns the fixed rating/education chart data.
func (s *Service) Heatmap() Heatmap { return s.heatmap }

// Scatter returns the fixed service/score chart data.
func (s *Service) Scatter() Scatter { return s.scatter }
