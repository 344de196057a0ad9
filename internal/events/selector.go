package events

import (
	"slices"

	"github.com/rhyrak/campus-sim/internal/random"
)

const (
	TermWeeks    = 16
	TermsPerYear = 2

	HistoryLen    = 10
	RepeatPenalty = 0.25
	MinWeight     = 0.01

	breakthroughSocial = 60
	breakthroughSlope  = 0.02
	neutralSocial      = 50
	socialLuckDivisor  = 20
	luckWeightFactor   = 0.05
)

// AbsWeek is a counter that grows monotonically across years and terms.
func AbsWeek(year, term, week int) int {
	return (year-1)*TermsPerYear*TermWeeks + (term-1)*TermWeeks + week
}

// EffectiveLuck combines the hidden luck attribute with a social bonus
// centred on a neutral social score.
func EffectiveLuck(luck float64, social int) float64 {
	return luck + float64(social-neutralSocial)/socialLuckDivisor
}

// Selector draws one weekly event. It remembers recently triggered events
// and per-event cooldowns.
type Selector struct {
	events        []*Event
	recent        []string
	cooldownUntil map[string]int
}

func NewSelector(events []*Event) *Selector {
	return &Selector{
		events:        events,
		cooldownUntil: make(map[string]int),
	}
}

// Candidates lists the events whose gates pass and whose cooldown expired.
func (s *Selector) Candidates(snap Snapshot) []*Event {
	abs := AbsWeek(snap.Year, snap.Term, snap.Week)
	var out []*Event
	for _, ev := range s.events {
		if !Matches(ev, snap) {
			continue
		}
		if abs <= s.cooldownUntil[ev.ID] {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Weight returns the adjusted sampling weight of an event.
func (s *Selector) Weight(ev *Event, snap Snapshot) float64 {
	w := ev.Weight
	if ev.HasTag(TagBreakthrough) && snap.Social >= breakthroughSocial {
		w *= 1 + float64(snap.Social-breakthroughSocial)*breakthroughSlope
	}
	luck := min(max(EffectiveLuck(snap.Luck, snap.Social), -2), 3)
	w *= 1 + luck*luckWeightFactor
	if slices.Contains(s.recent, ev.ID) {
		w *= RepeatPenalty
	}
	return max(MinWeight, w)
}

// Pick draws one eligible event. It returns false when nothing is eligible,
// which is a normal outcome.
func (s *Selector) Pick(snap Snapshot, rng random.Source) (*Event, bool) {
	candidates := s.Candidates(snap)
	if len(candidates) == 0 {
		return nil, false
	}
	weights := make([]float64, len(candidates))
	total := 0.0
	for i, ev := range candidates {
		weights[i] = s.Weight(ev, snap)
		total += weights[i]
	}

	r := random.Or(rng).Float64() * total
	for i, ev := range candidates {
		r -= weights[i]
		if r <= 0 {
			return ev, true
		}
	}
	return candidates[len(candidates)-1], true
}

// Record notes that the event was triggered at the given absolute week.
func (s *Selector) Record(ev *Event, absWeek int) {
	s.recent = append(s.recent, ev.ID)
	if len(s.recent) > HistoryLen {
		s.recent = s.recent[len(s.recent)-HistoryLen:]
	}
	if ev.CooldownWeeks > 0 {
		s.cooldownUntil[ev.ID] = absWeek + ev.CooldownWeeks
	}
}

// Recent returns the rolling history, oldest first.
func (s *Selector) Recent() []string {
	return slices.Clone(s.recent)
}

// CooldownUntil returns the last absolute week the event is blocked.
func (s *Selector) CooldownUntil(id string) int {
	return s.cooldownUntil[id]
}
