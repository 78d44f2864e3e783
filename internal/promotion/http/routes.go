package promotionhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.handleDashboard)
	r.Get("/charts/promotion-rate", h.handlePromotionRate)
	r.Get("/charts/static/heatmap.svg", h.handleHeatmap)
	r.Get("/charts/static/scatter.svg", h.handleScatter)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/export/promotion-rate.csv", h.handleCSV)
		gr.Get("/export/summary.csv", h.handleSummaryCSV)
	})
}
