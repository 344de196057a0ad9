package scheduler

import (
	"slices"

	"github.com/rhyrak/campus-sim/pkg/model"
)

type Configuration struct {
	TermCount         int
	TermTarget        int
	GraduationCredits int
	Lookahead         int
	FillerGap         int
	PickGuard         int
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		TermCount:         8,
		TermTarget:        20,
		GraduationCredits: 160, // TermCount * TermTarget
		Lookahead:         1,   // one term early so courses aren't stranded
		FillerGap:         2,
		PickGuard:         200,
	}
}

// splitCandidates sorts the term's candidates into required and elective
// lists. Both sorts are stable so catalog order breaks the last ties.
func splitCandidates(candidates []*model.Course) (required []*model.Course, electives []*model.Course) {
	for _, c := range candidates {
		if c.Required {
			required = append(required, c)
		} else {
			electives = append(electives, c)
		}
	}
	slices.SortStableFunc(required, func(a, b *model.Course) int {
		if d := a.SuggestedTerm - b.SuggestedTerm; d != 0 {
			return d
		}
		return b.Credits - a.Credits
	})
	slices.SortStableFunc(electives, func(a, b *model.Course) int {
		if d := a.SuggestedTerm - b.SuggestedTerm; d != 0 {
			return d
		}
		return a.Credits - b.Credits
	})
	return required, electives
}

// available filters out chosen courses and courses that clash with them.
func available(list []*model.Course, chosen []*model.Course) []*model.Course {
	var out []*model.Course
	for _, c := range list {
		if containsID(chosen, c.ID) || c.ConflictsWithAny(chosen) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsID(courses []*model.Course, id model.CourseID) bool {
	for _, c := range courses {
		if c.ID == id {
			return true
		}
	}
	return false
}
