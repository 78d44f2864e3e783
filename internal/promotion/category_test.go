package promotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, opt := range Categories() {
		c, err := ParseCategory(string(opt.Value))
		require.NoError(t, err)
		assert.Equal(t, opt.Value, c)
	}
	_, err := ParseCategory("age")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategoryTitle(t *testing.T) {
	cases := map[Category]string{
		CategoryDepartment:         "Department",
		CategoryRecruitmentChannel: "Recruitment Channel",
		CategoryKPIsMet:            "Kpis Met >80%",
		CategoryAwardsWon:          "Awards Won?",
	}
	for c, want := range cases {
		assert.Equal(t, want, c.Title(), string(c))
	}
}

func TestCategoryValue(t *testing.T) {
	rec := Record{Department: "HR", Region: "region_3", Gender: "Female", RecruitmentChannel: "sourcing", KPIsMet: FlagYes, AwardsWon: FlagNo}
	want := map[Category]string{
		CategoryDepartment:         "HR",
		CategoryRegion:             "region_3",
		CategoryGender:             "Female",
		CategoryRecruitmentChannel: "sourcing",
		CategoryKPIsMet:            FlagYes,
		CategoryAwardsWon:          FlagNo,
	}
	for c, v := range want {
		got, err := c.Value(rec)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := Category("education").Value(rec)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
