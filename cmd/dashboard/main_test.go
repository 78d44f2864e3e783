package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/promotion-dashboard/internal/app"
	promotionhttp "github.com/odyssey-erp/promotion-dashboard/internal/promotion/http"
	"github.com/odyssey-erp/promotion-dashboard/internal/promotion/svg"
	"github.com/odyssey-erp/promotion-dashboard/internal/testing/guard"
)

var _ = promotionhttp.Renderers{Bar: barRenderer{}, Heatmap: heatmapRenderer{}, Scatter: scatterRenderer{}}

func TestMainReturnsInTestMode(t *testing.T) {
	require.Equal(t, "1", os.Getenv(guard.Env))
	require.True(t, app.InTestMode())

	done := make(chan struct{})
	go func() {
		defer close(done)
		main()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not return in test mode")
	}
}

func TestRenderersDelegateToSVG(t *testing.T) {
	out, err := barRenderer{}.Bars(0, 0, []float64{0.5}, []string{"HR"}, svg.BarOpts{Percent: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")

	out, err = heatmapRenderer{}.Heatmap(0, 0, [][]int{{1}}, []string{"Bachelor's"}, []string{"3"}, svg.HeatmapOpts{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Bachelor&#39;s")

	out, err = scatterRenderer{}.Scatter(0, 0, []svg.Facet{{Label: "No"}}, svg.ScatterOpts{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "No data")
}
