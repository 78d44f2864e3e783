package promotionhttp

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/promotion-dashboard/internal/observability"
	"github.com/odyssey-erp/promotion-dashboard/internal/platform/httpx"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/export"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/svg"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/ui"
	"github.com/odyssey-erp/promotion-dashboard/internal/view"
)

const (
	emptyChartText = "No promoted employees in the dataset"
	chartPartial   = "partials/promotion_chart.html"
)

// DashboardService defines the dataset contract used by the handler.
type DashboardService interface {
	Snapshot() uuid.UUID
	LoadedAt() time.Time
	Summary() promotion.Summary
	Department() string
	Categories() []promotion.CategoryOption
	PromotionRate(category promotion.Category) (promotion.BarChart, error)
	Distribution(category promotion.Category) (promotion.Distribution, error)
	Heatmap() promotion.Heatmap
	Scatter() promotion.Scatter
}

// RecomputeRecorder observes promotion-rate recomputations.
type RecomputeRecorder interface {
	ObserveRecompute(category, result string)
}

// Renderers groups the SVG renderers used by the dashboard.
type Renderers struct {
	Bar     ui.BarRenderer
	Heatmap ui.HeatmapRenderer
	Scatter ui.ScatterRenderer
}

// Handler serves the promotion dashboard.
type Handler struct {
	logger    *slog.Logger
	service   DashboardService
	templates *view.Engine
	render    Renderers
	metrics   RecomputeRecorder
	validate  *validator.Validate
	bufPool   sync.Pool

	staticOnce sync.Once
	static     staticCharts
	staticErr  error
}

type staticCharts struct {
	heatmap template.HTML
	scatter template.HTML
}

type chartQuery struct {
	Category string `validate:"required,category"`
}

// NewHandler constructs the dashboard HTTP handler.
func NewHandler(logger *slog.Logger, service DashboardService, templates *view.Engine, render Renderers, metrics RecomputeRecorder) *Handler {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return promotion.Category(fl.Field().String()).Valid()
	})
	h := &Handler{
		logger:    logger,
		service:   service,
		templates: templates,
		render:    render,
		metrics:   metrics,
		validate:  v,
	}
	h.bufPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	category, err := h.parseCategory(r, true)
	if err != nil {
		h.observe(r.URL.Query().Get("category"), observability.ResultInvalid)
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	vm, err := h.buildViewModel(category)
	if err != nil {
		h.handleServerError(w, "build dashboard", err)
		return
	}

	data := view.TemplateData{
		Title:       "Employee Promotion Analysis",
		CurrentPath: r.URL.Path,
		Data:        vm,
	}
	if err := h.templates.Render(w, "pages/dashboard.html", data); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

// handlePromotionRate is the selector-change callback: it recomputes the single
// dependent chart and returns either its spec as JSON or the rendered fragment.
func (h *Handler) handlePromotionRate(w http.ResponseWriter, r *http.Request) {
	category, err := h.parseCategory(r, false)
	if err != nil {
		h.observe(r.URL.Query().Get("category"), observability.ResultInvalid)
		httpx.RespondError(w, err)
		return
	}

	spec, err := h.service.PromotionRate(category)
	if err != nil {
		h.observe(string(category), observability.ResultError)
		h.logError("recompute promotion rate", err)
		httpx.RespondError(w, err)
		return
	}
	h.observe(string(category), observability.ResultOK)

	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, spec)
		return
	}

	chart, err := h.renderPromotionRate(spec)
	if err != nil {
		h.handleServerError(w, "render promotion chart", err)
		return
	}
	buf := h.getBuffer()
	defer h.putBuffer(buf)
	if err := h.templates.RenderPartial(buf, chartPartial, chart); err != nil {
		h.handleServerError(w, "render chart partial", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream chart", err)
	}
}

func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "heatmap")
}

func (h *Handler) handleScatter(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "scatter")
}

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request, name string) {
	charts, err := h.staticCharts()
	if err != nil {
		h.handleServerError(w, "render static charts", err)
		return
	}
	etag := fmt.Sprintf("\"%s-%s\"", h.service.Snapshot(), name)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Last-Modified", h.service.LoadedAt().UTC().Format(http.TimeFormat))
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	body := charts.heatmap
	if name == "scatter" {
		body = charts.scatter
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write([]byte(body)); err != nil {
		h.logError("stream static chart", err)
	}
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	category, err := h.parseCategory(r, true)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	dist, err := h.service.Distribution(category)
	if err != nil {
		h.handleServerError(w, "load distribution", err)
		return
	}

	buf := h.getBuffer()
	defer h.putBuffer(buf)
	if err := export.WriteDistributionCSV(buf, category, dist); err != nil {
		h.handleServerError(w, "write distribution csv", err)
		return
	}

	filename := fmt.Sprintf("promotion-rate-%s.csv", slug(string(category)))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) handleSummaryCSV(w http.ResponseWriter, r *http.Request) {
	buf := h.getBuffer()
	defer h.putBuffer(buf)
	if err := export.WriteSummaryCSV(buf, h.service.Summary()); err != nil {
		h.handleServerError(w, "write summary csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"promotion-summary.csv\"")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

// parseCategory validates the category query parameter. When allowDefault is set an
// absent parameter resolves to the default selection.
func (h *Handler) parseCategory(r *http.Request, allowDefault bool) (promotion.Category, error) {
	q := chartQuery{Category: r.URL.Query().Get("category")}
	if q.Category == "" && allowDefault {
		return promotion.DefaultCategory, nil
	}
	if err := h.validate.Struct(q); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return "", fmt.Errorf("%w: %w: %q", httpx.ErrValidation, promotion.ErrInvalidCategory, q.Category)
		}
		return "", err
	}
	return promotion.Category(q.Category), nil
}

func (h *Handler) buildViewModel(category promotion.Category) (ui.DashboardViewModel, error) {
	vm := ui.DashboardViewModel{
		Cards:      ui.ToCards(h.service.Summary()),
		Options:    ui.ToOptions(h.service.Categories(), category),
		Selected:   string(category),
		Department: h.service.Department(),
	}

	var g errgroup.Group
	g.Go(func() error {
		spec, err := h.service.PromotionRate(category)
		if err != nil {
			h.observe(string(category), observability.ResultError)
			return err
		}
		h.observe(string(category), observability.ResultOK)
		chart, err := h.renderPromotionRate(spec)
		if err != nil {
			return err
		}
		vm.PromotionRate = chart
		return nil
	})
	g.Go(func() error {
		charts, err := h.staticCharts()
		if err != nil {
			return err
		}
		vm.HeatmapSVG = charts.heatmap
		vm.ScatterSVG = charts.scatter
		return nil
	})
	if err := g.Wait(); err != nil {
		return ui.DashboardViewModel{}, err
	}
	return vm, nil
}

func (h *Handler) renderPromotionRate(spec promotion.BarChart) (ui.PromotionRateChart, error) {
	if h.render.Bar == nil {
		return ui.PromotionRateChart{}, errors.New("bar renderer missing")
	}
	out, err := h.render.Bar.Bars(svg.DefaultWidth, svg.DefaultHeight, spec.Values, spec.Labels, svg.BarOpts{
		Title:       spec.Title,
		Description: fmt.Sprintf("Share of promoted employees by %s", spec.XLabel),
		XLabel:      spec.XLabel,
		YLabel:      spec.YLabel,
		Color:       spec.Color,
		EmptyText:   emptyChartText,
		Percent:     true,
	})
	if err != nil {
		return ui.PromotionRateChart{}, err
	}
	return ui.PromotionRateChart{
		Category: string(spec.Category),
		XLabel:   spec.XLabel,
		YLabel:   spec.YLabel,
		SVG:      out,
	}, nil
}

// staticCharts renders the fixed department charts exactly once.
func (h *Handler) staticCharts() (staticCharts, error) {
	h.staticOnce.Do(func() {
		if h.render.Heatmap == nil || h.render.Scatter == nil {
			h.staticErr = errors.New("static chart renderer missing")
			return
		}
		hm := h.service.Heatmap()
		heatmap, err := h.render.Heatmap.Heatmap(svg.DefaultWidth, svg.DefaultHeight, hm.Counts, hm.XLabels, hm.YLabels, svg.HeatmapOpts{
			Title:       hm.Title,
			Description: fmt.Sprintf("%s department, employees per rating and education", h.service.Department()),
			XLabel:      hm.XLabel,
			YLabel:      hm.YLabel,
			Scale:       hm.Scale,
		})
		if err != nil {
			h.staticErr = err
			return
		}
		sc := h.service.Scatter()
		scatter, err := h.render.Scatter.Scatter(svg.DefaultWidth, svg.DefaultHeight, ui.ToFacets(sc), svg.ScatterOpts{
			Title:       sc.Title,
			Description: fmt.Sprintf("%s department, %s by %s", h.service.Department(), sc.YLabel, sc.XLabel),
			XLabel:      sc.XLabel,
			YLabel:      sc.YLabel,
			FacetLabel:  sc.FacetLabel,
			Colors:      sc.Colors,
		})
		if err != nil {
			h.staticErr = err
			return
		}
		h.static = staticCharts{heatmap: heatmap, scatter: scatter}
	})
	return h.static, h.staticErr
}

func (h *Handler) observe(category, result string) {
	if h.metrics != nil {
		h.metrics.ObserveRecompute(category, result)
	}
}

func (h *Handler) getBuffer() *bytes.Buffer {
	buf := h.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (h *Handler) putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	h.bufPool.Put(buf)
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}

func slug(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(s))
	return strings.Trim(cleaned, "-")
}
