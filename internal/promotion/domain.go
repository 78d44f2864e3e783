package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Flag labels used for boolean-like columns once normalised.
const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

var (
	// ErrInvalidCategory indicates a selector outside the supported category set.
	ErrInvalidCategory = errors.New("promotion: invalid category")
	// ErrMissingColumn indicates the CSV header lacks a required column.
	ErrMissingColumn = errors.New("promotion: missing column")
)

// Record is one employee row after normalisation.
type Record struct {
	Department         string
	Region             string
	Education          string
	Gender             string
	RecruitmentChannel string
	KPIsMet            string
	AwardsWon          string
	PreviousYearRating float64
	LengthOfService    int
	AvgTrainingScore   float64
	NoOfTrainings      int
	Promoted           string
}

// IsPromoted reports whether the promotion outcome is "Yes".
func (r Record) IsPromoted() bool {
	return r.Promoted == FlagYes
}

// Table is a read-only set of employee records. It is never mutated after construction.
type Table struct {
	id       uuid.UUID
	loadedAt time.Time
	records  []Record
}

// NewTable copies records into a new immutable Table.
func NewTable(records []Record) *Table {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Table{id: uuid.New(), loadedAt: time.Now().UTC(), records: copied}
}

// ID identifies this snapshot of the dataset.
func (t *Table) ID() uuid.UUID {
	if t == nil {
		return uuid.Nil
	}
	return t.id
}

// LoadedAt returns when the table was constructed.
func (t *Table) LoadedAt() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.loadedAt
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Each calls fn for every record in load order.
func (t *Table) Each(fn func(Record)) {
	if t == nil {
		return
	}
	for _, rec := range t.records {
		fn(rec)
	}
}

// Filter returns a new Table holding the records matching keep.
// The derived table shares the parent snapshot ID.
func (t *Table) Filter(keep func(Record) bool) *Table {
	out := &Table{}
	if t == nil {
		return out
	}
	out.id = t.id
	out.loadedAt = t.loadedAt
	for _, rec := range t.records {
		if keep(rec) {
			out.records = append(out.records, rec)
		}
	}
	return out
}

// Records returns a copy of the underlying records.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
