// Package study decides which enrolled courses a study action should push
// and whether the player has unlocked high grades for required courses.
package study

import (
	"cmp"
	"math"
	"slices"

	"github.com/rhyrak/campus-sim/internal/grading"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// DefaultCount is the number of courses one study action advances.
const DefaultCount = 4

// Scorer returns the current predicted score of a course. ok is false
// when no prediction is available.
type Scorer interface {
	Score(c *model.Course) (score float64, ok bool)
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(c *model.Course) (float64, bool)

func (f ScorerFunc) Score(c *model.Course) (float64, bool) { return f(c) }

type Thresholds struct {
	RequiredPass         float64
	RequiredPassUnlocked float64
	ElectivePass         float64
	RequiredStage        float64
	ElectiveStage        float64
	UnlockedStage        float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RequiredPass:         78,
		RequiredPassUnlocked: 82,
		ElectivePass:         90,
		RequiredStage:        78,
		ElectiveStage:        90,
		UnlockedStage:        95,
	}
}

func (th Thresholds) requiredPass(unlocked bool) float64 {
	if unlocked {
		return th.RequiredPassUnlocked
	}
	return th.RequiredPass
}

// StageTarget is the score a course is pushed towards once it is safe.
func (th Thresholds) StageTarget(c *model.Course, unlocked bool) float64 {
	switch {
	case unlocked:
		return th.UnlockedStage
	case c.Required:
		return th.RequiredStage
	default:
		return th.ElectiveStage
	}
}

// Priority orders study targets. Lower tiers come first; inside a tier the
// smaller gap wins.
type Priority struct {
	Tier int
	Gap  float64
}

func Prioritize(c *model.Course, scorer Scorer, unlocked bool, th Thresholds) Priority {
	score, ok := scorer.Score(c)
	if !ok {
		return Priority{Tier: 0, Gap: math.Inf(1)}
	}
	if pass := th.requiredPass(unlocked); c.Required && score < pass {
		return Priority{Tier: 0, Gap: pass - score}
	}
	if !c.Required && score < th.ElectivePass {
		return Priority{Tier: 1, Gap: th.ElectivePass - score}
	}
	return Priority{Tier: 2, Gap: max(0, th.StageTarget(c, unlocked)-score)}
}

// SelectTargets returns up to count courses in priority order. The input
// slice is left untouched.
func SelectTargets(courses []*model.Course, scorer Scorer, unlocked bool, count int, th Thresholds) []*model.Course {
	if len(courses) == 0 || count <= 0 {
		return nil
	}
	type ranked struct {
		c *model.Course
		p Priority
	}
	list := make([]ranked, 0, len(courses))
	for _, c := range courses {
		list = append(list, ranked{c: c, p: Prioritize(c, scorer, unlocked, th)})
	}
	slices.SortStableFunc(list, func(a, b ranked) int {
		if d := cmp.Compare(a.p.Tier, b.p.Tier); d != 0 {
			return d
		}
		if d := compareGap(a.p.Gap, b.p.Gap); d != 0 {
			return d
		}
		if d := cmp.Compare(a.c.Difficulty, b.c.Difficulty); d != 0 {
			return d
		}
		return cmp.Compare(a.c.Name, b.c.Name)
	})

	out := make([]*model.Course, 0, min(count, len(list)))
	for _, r := range list[:min(count, len(list))] {
		out = append(out, r.c)
	}
	return out
}

// compareGap sorts ascending, except that an infinite gap (no score at
// all) is the most urgent and sorts first.
func compareGap(a, b float64) int {
	ia, ib := math.IsInf(a, 1), math.IsInf(b, 1)
	switch {
	case ia && ib:
		return 0
	case ia:
		return -1
	case ib:
		return 1
	}
	return cmp.Compare(a, b)
}

// CheckUnlock reports whether every required course already predicts a B.
// A term without required courses counts as unlocked.
func CheckUnlock(courses []*model.Course, scorer Scorer) bool {
	for _, c := range courses {
		if !c.Required {
			continue
		}
		score, ok := scorer.Score(c)
		if !ok || !grading.IsGradeB(score) {
			return false
		}
	}
	return true
}
