package sim

import (
	"math"

	"github.com/rhyrak/campus-sim/pkg/model"
)

const (
	softMoodSocial = 90
	softMoodFactor = 0.8
)

// ApplyEffect adds the deltas of an effect to the state. Stats are clamped
// to 0..100 and money never drops below zero.
func (e *Engine) ApplyEffect(eff model.Effect) {
	s := e.State
	s.Energy = clampStat(s.Energy + eff.Energy)
	s.Stress = clampStat(s.Stress + eff.Stress)
	e.applyMood(eff.Mood)
	s.Money = max(0, s.Money+eff.Money)
	s.Social = clampStat(s.Social + eff.Social)

	for k, v := range eff.Flags {
		was := s.Flags[k]
		s.Flags[k] = v
		if v && !was {
			switch k {
			case FlagGotOffer:
				s.Milestones.Offers++
			case FlagGotSCI:
				s.Milestones.SCI++
			}
		}
	}

	s.TermGradeBonus += eff.TermGradeBonus
	s.Hidden = s.Hidden.Add(eff.Hidden)

	if eff.Note != "" {
		e.logger.Debug("effect", "note", eff.Note)
	}
}

// applyMood softens mood losses for very social players, but never to zero.
func (e *Engine) applyMood(d int) int {
	if d < 0 && e.State.Social > softMoodSocial {
		d = min(-1, int(math.Floor(float64(d)*softMoodFactor+0.5)))
	}
	e.State.Mood = clampStat(e.State.Mood + d)
	return d
}
