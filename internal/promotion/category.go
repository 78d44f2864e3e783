package promotion

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category names a categorical column that can drive the promotion-rate chart.
// Values match the source CSV headers.
type Category string

// Supported categories.
const (
	CategoryDepartment         Category = "department"
	CategoryRegion             Category = "region"
	CategoryGender             Category = "gender"
	CategoryRecruitmentChannel Category = "recruitment_channel"
	CategoryKPIsMet            Category = "KPIs_met >80%"
	CategoryAwardsWon          Category = "awards_won?"
)

// DefaultCategory is selected when the dashboard first loads.
const DefaultCategory = CategoryDepartment

// CategoryOption pairs a selector value with its dropdown label.
type CategoryOption struct {
	Value Category
	Label string
}

var categoryOptions = []CategoryOption{
	{Value: CategoryDepartment, Label: "Department"},
	{Value: CategoryRegion, Label: "Region"},
	{Value: CategoryGender, Label: "Gender"},
	{Value: CategoryRecruitmentChannel, Label: "Recruitment Channel"},
	{Value: CategoryKPIsMet, Label: "KPIs met > 80%?"},
	{Value: CategoryAwardsWon, Label: "Awards won?"},
}

var titleCaser = cases.Title(language.English)

// Categories returns the dropdown options in display order.
func Categories() []CategoryOption {
	out := make([]CategoryOption, len(categoryOptions))
	copy(out, categoryOptions)
	return out
}

// ParseCategory validates a raw selector value.
func ParseCategory(raw string) (Category, error) {
	for _, opt := range categoryOptions {
		if string(opt.Value) == raw {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Title returns the title-cased column name used as the x-axis label.
func (c Category) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(c), "_", " "))
}

// Value extracts the category value from a record.
func (c Category) Value(rec Record) (string, error) {
	switch c {
	case CategoryDepartment:
		return rec.Department, nil
	case CategoryRegion:
		return rec.Region, nil
	case CategoryGender:
		return rec.Gender, nil
	case CategoryRecruitmentChannel:
		return rec.RecruitmentChannel, nil
	case CategoryKPIsMet:
		return rec.KPIsMet, nil
	case CategoryAwardsWon:
		return rec.AwardsWon, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
}
