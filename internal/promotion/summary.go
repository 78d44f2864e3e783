package promotion

// Summary holds the headline numbers shown on the dashboard cards.
type Summary struct {
	Employees     int
	Promoted      int
	PromotionRate float64
}

// Summarize counts employees and promotions in table.
func Summarize(table *Table) Summary {
	var s Summary
	table.Each(func(rec Record) {
		s.Employees++
		if rec.IsPromoted() {
			s.Promoted++
		}
	})
	if s.Employees > 0 {
		s.PromotionRate = round2(float64(s.Promoted) / float64(s.Employees))
	}
	return s
}
