package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/promotion-dashboard/internal/promotion"
)

func TestToOptionsMarksSelection(t *testing.T) {
	opts := ToOptions(promotion.Categories(), promotion.CategoryGender)
	require.Len(t, opts, 6)
	for _, o := range opts {
		assert.Equal(t, o.Value == "gender", o.Selected, o.Value)
	}
}

func TestToFacets(t *testing.T) {
	sc := promotion.Scatter{Facets: []promotion.ScatterFacet{
		{Label: "No", Points: []promotion.ScatterPoint{{X: 1, Y: 2, Size: 3, Group: "Yes"}}},
	}}
	facets := ToFacets(sc)
	require.Len(t, facets, 1)
	assert.Equal(t, 3.0, facets[0].Points[0].Size)
	assert.Equal(t, "Yes", facets[0].Points[0].Group)
}
