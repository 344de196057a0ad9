package events

import (
	"slices"

	"github.com/rhyrak/campus-sim/pkg/model"
)

// Snapshot is the part of the simulation state that gates and weights read.
type Snapshot struct {
	Year       int
	Term       int
	Week       int
	Background model.Background
	Track      model.Track
	Route      model.Route
	Social     int
	Luck       float64
	Flags      map[string]bool
}

func (s Snapshot) Flag(name string) bool {
	return s.Flags[name]
}

// Gate is one conjunction of conditions. Zero valued fields impose no
// constraint: a zero max is unbounded and an empty set allows anything.
type Gate struct {
	YearMin, YearMax int
	TermMin, TermMax int
	WeekMin, WeekMax int

	BackgroundIn []model.Background
	TrackIn      []model.Track
	RouteIn      []model.Route

	SocialMin, SocialMax int

	ForbidAny  []string
	RequireAll []string
	RequireAny []string
}

// Allows evaluates the gate against the snapshot, failing fast.
func (g Gate) Allows(s Snapshot) bool {
	if !inRange(s.Year, g.YearMin, g.YearMax) ||
		!inRange(s.Term, g.TermMin, g.TermMax) ||
		!inRange(s.Week, g.WeekMin, g.WeekMax) {
		return false
	}
	if len(g.BackgroundIn) > 0 && !slices.Contains(g.BackgroundIn, s.Background) {
		return false
	}
	if len(g.TrackIn) > 0 && !slices.Contains(g.TrackIn, s.Track) {
		return false
	}
	if len(g.RouteIn) > 0 && !slices.Contains(g.RouteIn, s.Route) {
		return false
	}
	if !inRange(s.Social, g.SocialMin, g.SocialMax) {
		return false
	}
	if slices.ContainsFunc(g.ForbidAny, s.Flag) {
		return false
	}
	for _, f := range g.RequireAll {
		if !s.Flag(f) {
			return false
		}
	}
	if len(g.RequireAny) > 0 && !slices.ContainsFunc(g.RequireAny, s.Flag) {
		return false
	}
	return true
}

// Matches reports whether every gate of the event allows the snapshot.
// An event without gates always matches.
func Matches(ev *Event, s Snapshot) bool {
	for _, g := range ev.Gates {
		if !g.Allows(s) {
			return false
		}
	}
	return true
}

func inRange(v, lo, hi int) bool {
	if v < lo {
		return false
	}
	return hi == 0 || v <= hi
}
