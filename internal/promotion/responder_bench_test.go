package promotion

import (
	"fmt"
	"testing"
)

func benchmarkTable(n int) *Table {
	departments := []string{"Sales & Marketing", "Operations", "Technology", "Analytics", "R&D", "Procurement", "Finance", "HR", "Legal"}
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec := Record{
			Department:         departments[i%len(departments)],
			Region:             fmt.Sprintf("region_%d", i%34+1),
			Education:          "Bachelor's",
			Gender:             "Male",
			RecruitmentChannel: "other",
			KPIsMet:            FlagNo,
			AwardsWon:          FlagNo,
			PreviousYearRating: float64(i%5 + 1),
			LengthOfService:    i%20 + 1,
			AvgTrainingScore:   float64(40 + i%60),
			NoOfTrainings:      i%4 + 1,
			Promoted:           FlagNo,
		}
		if i%11 == 0 {
			rec.Promoted = FlagYes
			rec.KPIsMet = FlagYes
		}
		records = append(records, rec)
	}
	return NewTable(records)
}

func BenchmarkResponderDistribution(b *testing.B) {
	responder := NewResponder(benchmarkTable(55000))
	for _, opt := range Categories() {
		b.Run(string(opt.Value), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := responder.Distribution(opt.Value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewService(b *testing.B) {
	table := benchmarkTable(55000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewService(table, StaticDepartment)
	}
}

func TestBenchmarkTableDistributions(t *testing.T) {
	responder := NewResponder(benchmarkTable(990))
	for _, opt := range Categories() {
		dist, err := responder.Distribution(opt.Value)
		if err != nil {
			t.Fatalf("%s: %v", opt.Value, err)
		}
		if len(dist) == 0 {
			t.Fatalf("%s: empty distribution", opt.Value)
		}
	}
}
