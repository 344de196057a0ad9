// Package grading turns a term of study into a course percentage and maps
// percentages to letters and grade points.
package grading

import (
	"hash/fnv"
	"math"

	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
)

// Input is everything a grader may look at for one course.
type Input struct {
	Course     *model.Course
	Hits       int // study actions spent on this course
	TotalStudy int // study actions this term across all courses
	FinalsHits int // finals weeks with at least one study action, 0..3

	TermBonus int
	Energy    int
	Stress    int

	Discipline          bool
	UnresolvedConflicts bool
	Unlocked            bool
}

// Grader computes a course percentage in 0..100. Preview is deterministic
// for a given input; Commit draws its noise from rng.
type Grader interface {
	Preview(in Input) float64
	Commit(in Input, rng random.Source) float64
}

// Standard is the reference grader.
type Standard struct{}

var _ Grader = Standard{}

const (
	baseScore       = 70.0
	studyCeiling    = 22.0
	studyDecay      = 0.8
	finalsPerWeek   = 2.0
	maxFinalsWeeks  = 3
	lockedRequired  = 89.0
	electiveFloor   = 60.0
	previewNoise    = 2
	commitNoise     = 4
	disciplineCost  = 10.0
	conflictCost    = 5.0
	energyComfort   = 30
	stressComfort   = 70
	penaltyDivisor  = 5.0
	focusPerHit     = 4
	focusDivisor    = 8.0
	maxFocusPenalty = 3.0
)

func (Standard) Preview(in Input) float64 {
	return finish(in, raw(in)+noise(previewSource(in), previewNoise))
}

func (Standard) Commit(in Input, rng random.Source) float64 {
	return finish(in, raw(in)+noise(random.Or(rng), commitNoise))
}

func raw(in Input) float64 {
	diff := 3
	if in.Course != nil {
		diff = in.Course.Difficulty
	}
	score := baseScore - 2*float64(diff-3)
	score += studyCeiling * (1 - math.Pow(studyDecay, float64(in.Hits)))
	score += finalsPerWeek * float64(min(in.FinalsHits, maxFinalsWeeks))

	if in.TotalStudy > 0 {
		spread := float64(max(0, in.TotalStudy-in.Hits*focusPerHit)) / focusDivisor
		score -= min(maxFocusPenalty, spread)
	}

	score += float64(in.TermBonus)
	score -= float64(max(0, energyComfort-in.Energy)) / penaltyDivisor
	score -= float64(max(0, in.Stress-stressComfort)) / penaltyDivisor
	if in.Discipline {
		score -= disciplineCost
	}
	if in.UnresolvedConflicts {
		score -= conflictCost
	}
	return score
}

func finish(in Input, score float64) float64 {
	if in.Course != nil {
		if in.Course.Required && !in.Unlocked {
			score = min(score, lockedRequired)
		}
		if !in.Course.Required && in.Hits > 0 {
			score = max(score, electiveFloor)
		}
	}
	return math.Round(min(max(score, 0), 100))
}

// noise is a uniform integer in [-spread, spread].
func noise(rng random.Source, spread int) float64 {
	return float64(random.IntRange(rng, -spread, spread))
}

// previewSource seeds a generator from the course id and hit count, so a
// preview never changes until the player studies again.
func previewSource(in Input) random.Source {
	h := fnv.New64a()
	if in.Course != nil {
		h.Write([]byte(in.Course.ID))
	}
	h.Write([]byte{byte(in.Hits), byte(in.Hits >> 8)})
	seed := int64(h.Sum64() &^ (1 << 63))
	if seed == 0 {
		seed = 1
	}
	return random.NewSeeded(seed)
}
