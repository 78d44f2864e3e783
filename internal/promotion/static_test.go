package promotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFixture() *Table {
	mk := func(dept, edu string, rating float64, service, trainings int, score float64, kpi, prom string) Record {
		return Record{Department: dept, Education: edu, PreviousYearRating: rating, LengthOfService: service, NoOfTrainings: trainings, AvgTrainingScore: score, KPIsMet: kpi, Promoted: prom, Gender: "Male"}
	}
	return NewTable([]Record{
		mk("HR", "Bachelor's", 3, 4, 1, 50, FlagNo, FlagNo),
		mk("HR", "Bachelor's", 3, 6, 2, 52, FlagYes, FlagYes),
		mk("HR", "Master's & above", 5, 10, 1, 48, FlagYes, FlagNo),
		mk("HR", "Bachelor's", 1, 2, 3, 61, FlagNo, FlagNo),
		mk("Sales", "Bachelor's", 4, 3, 1, 70, FlagYes, FlagYes),
	})
}

func TestRatingEducationHeatmap(t *testing.T) {
	hm := RatingEducationHeatmap(DepartmentSubset(staticFixture(), "HR"))

	assert.Equal(t, []string{"1", "3", "5"}, hm.XLabels)
	assert.Equal(t, []string{"Bachelor's", "Master's & above"}, hm.YLabels)
	assert.Equal(t, [][]int{{1, 2, 0}, {0, 0, 1}}, hm.Counts)
	assert.Equal(t, 2, hm.Max())
	assert.Equal(t, "Previous Year Rating", hm.XLabel)
}

func TestServiceTrainingScatter(t *testing.T) {
	sc := ServiceTrainingScatter(DepartmentSubset(staticFixture(), "HR"))

	require.Len(t, sc.Facets, 2)
	assert.Equal(t, FlagNo, sc.Facets[0].Label)
	assert.Len(t, sc.Facets[0].Points, 3)
	assert.Len(t, sc.Facets[1].Points, 1)
	assert.Equal(t, ScatterPoint{X: 6, Y: 52, Size: 2, Group: FlagYes}, sc.Facets[1].Points[0])
	assert.Equal(t, []string{FlagNo, FlagYes}, sc.Groups)
	assert.Equal(t, Palette[0], sc.Colors[FlagNo])
}

func TestSummarize(t *testing.T) {
	s := Summarize(staticFixture())
	assert.Equal(t, Summary{Employees: 5, Promoted: 2, PromotionRate: 0.4}, s)
	assert.Equal(t, Summary{}, Summarize(NewTable(nil)))
}

func TestServiceKeepsFixedChartsStable(t *testing.T) {
	svc := NewService(staticFixture(), "")
	assert.Equal(t, StaticDepartment, svc.Department())
	heatmap := svc.Heatmap()
	for _, opt := range svc.Categories() {
		_, err := svc.PromotionRate(opt.Value)
		require.NoError(t, err)
	}
	assert.Equal(t, heatmap, svc.Heatmap())
	assert.Equal(t, 2, svc.Summary().Promoted)
}
