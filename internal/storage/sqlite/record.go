package sqlite

import "github.com/rhyrak/campus-sim/internal/sim"

// RecordFromSummary flattens a finished run for the archive.
func RecordFromSummary(id string, seed int64, sum *sim.Summary) RunRecord {
	rec := RunRecord{
		ID:         id,
		Track:      string(sum.Track),
		Background: string(sum.Background),
		Route:      string(sum.Route),
		Seed:       seed,
		Credits:    sum.Credits,
		Graduated:  sum.Graduated,
		GPA:        sum.GPA,
		SCI:        sum.Milestones.SCI,
		Offers:     sum.Milestones.Offers,
		Money:      sum.Money,
	}
	if sum.CET4 != nil {
		rec.CET4 = &sum.CET4.Score
	}
	if sum.CET6 != nil {
		rec.CET6 = &sum.CET6.Score
	}
	for _, t := range sum.Terms {
		rec.Terms = append(rec.Terms, TermRecord{Year: t.Year, Term: t.Term, GPA: t.GPA, Credits: t.Credits})
	}
	return rec
}
