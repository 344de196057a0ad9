package scheduler

import (
	"slices"

	"github.com/rhyrak/campus-sim/pkg/model"
)

// GeneratePlan builds the eight term curriculum for a track. Courses must be
// in catalog order: mandatory sequence, track pool, general pool.
// Terms the catalog cannot fill are left under target; ValidatePlan reports them.
func GeneratePlan(track model.Track, courses []*model.Course, cfg *Configuration) *model.CurriculumPlan {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	pool := make([]*model.Course, len(courses))
	for i, c := range courses {
		pool[i] = c.Clone()
	}

	plan := model.NewCurriculumPlan(track, pool)
	plan.GraduationCredits = cfg.GraduationCredits

	used := make(map[model.CourseID]bool, len(pool))
	for term := 1; term <= cfg.TermCount; term++ {
		plan.TermTargets[term] = cfg.TermTarget

		var chosen []*model.Course
		for _, c := range pool {
			if c.Locked && c.SuggestedTerm == term {
				chosen = append(chosen, c)
				plan.LockedByTerm[term] = append(plan.LockedByTerm[term], c.ID)
			}
		}

		var candidates []*model.Course
		for _, c := range pool {
			if c.Locked || used[c.ID] || c.SuggestedTerm > term+cfg.Lookahead {
				continue
			}
			candidates = append(candidates, c)
		}
		required, electives := splitCandidates(candidates)

		// Required courses first without overshooting, then everything.
		chosen = FillTerm(required, chosen, cfg.TermTarget, cfg, false)
		chosen = FillTerm(slices.Concat(required, electives), chosen, cfg.TermTarget, cfg, true)

		for _, c := range chosen {
			used[c.ID] = true
			plan.PlannedByTerm[term] = append(plan.PlannedByTerm[term], c.ID)
		}
	}
	return plan
}

// FillTerm greedily adds candidates to chosen until the credit target is
// reached. It returns the extended selection; chosen itself is not modified.
func FillTerm(candidates []*model.Course, chosen []*model.Course, target int, cfg *Configuration, allowOverage bool) []*model.Course {
	selection := append([]*model.Course(nil), chosen...)
	for guard := 0; guard < cfg.PickGuard; guard++ {
		remaining := target - model.SumCredits(selection)
		if remaining <= 0 {
			break
		}
		c := pick(available(candidates, selection), remaining, cfg.FillerGap, allowOverage)
		if c == nil {
			break
		}
		selection = append(selection, c)
	}
	return selection
}

// pick chooses the next course: the first fit, the smallest fit when the gap
// is small, otherwise the smallest overage.
func pick(list []*model.Course, remaining int, fillerGap int, allowOverage bool) *model.Course {
	var fit *model.Course
	for _, c := range list {
		if c.Credits > remaining {
			continue
		}
		if remaining > fillerGap {
			return c
		}
		if fit == nil || c.Credits < fit.Credits {
			fit = c
		}
	}
	if fit != nil || !allowOverage {
		return fit
	}

	var best *model.Course
	for _, c := range list {
		if best == nil || c.Credits < best.Credits {
			best = c
		}
	}
	return best
}
