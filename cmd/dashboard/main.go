package main

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odyssey-erp/promotion-dashboard/internal/app"
	"github.com/odyssey-erp/promotion-dashboard/internal/observability"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion"
	promotionhttp "github.com/odyssey-erp/promotion-dashboard/internal/promotion/http"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/svg"
	"github.com/odyssey-erp/promotion-dashboard/internal/view"
)

type barRenderer struct{}

func (barRenderer) Bars(width, height int, values []float64, labels []string, opts svg.BarOpts) (template.HTML, error) {
	return svg.Bars(width, height, values, labels, opts)
}

type heatmapRenderer struct{}

func (heatmapRenderer) Heatmap(width, height int, counts [][]int, xLabels, yLabels []string, opts svg.HeatmapOpts) (template.HTML, error) {
	return svg.Heatmap(width, height, counts, xLabels, yLabels, opts)
}

type scatterRenderer struct{}

func (scatterRenderer) Scatter(width, height int, facets []svg.Facet, opts svg.ScatterOpts) (template.HTML, error) {
	return svg.Scatter(width, height, facets, opts)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	table, stats, err := promotion.LoadFile(cfg.DataPath)
	if err != nil {
		logger.Error("load dataset", slog.String("path", cfg.DataPath), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("dataset loaded",
		slog.String("path", cfg.DataPath),
		slog.String("snapshot", table.ID().String()),
		slog.Int("records", stats.Kept),
	)
	if stats.Dropped > 0 {
		logger.Debug("dropped incomplete rows", slog.Int("rows", stats.Rows), slog.Int("dropped", stats.Dropped))
	}

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	metrics.SetDatasetRecords(table.Len())

	service := promotion.NewService(table, cfg.StaticDepartment)
	summary := service.Summary()
	if summary.Promoted == 0 {
		logger.Warn("dataset holds no promoted employees, promotion-rate chart will be empty")
	}
	handler := promotionhttp.NewHandler(logger, service, templates, promotionhttp.Renderers{
		Bar:     barRenderer{},
		Heatmap: heatmapRenderer{},
		Scatter: scatterRenderer{},
	}, metrics)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		PromotionHandler: handler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
