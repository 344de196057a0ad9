package events

import (
	"slices"
	"testing"

	"github.com/rhyrak/campus-sim/internal/random"
	"github.com/rhyrak/campus-sim/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same draw.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return int(s.f * float64(n)) }

func neutral() Snapshot {
	return Snapshot{Year: 1, Term: 1, Week: 1, Background: model.BackgroundOK, Track: model.TrackScience, Social: 50}
}

func TestGateAllows(t *testing.T) {
	base := neutral()
	base.Year, base.Week, base.Social = 2, 10, 40

	tests := []struct {
		name string
		gate Gate
		snap func(Snapshot) Snapshot
		want bool
	}{
		{"empty gate", Gate{}, nil, true},
		{"year in range", Gate{YearMin: 2, YearMax: 3}, nil, true},
		{"year below", Gate{YearMin: 3}, nil, false},
		{"zero max is unbounded", Gate{WeekMin: 5}, nil, true},
		{"week above", Gate{WeekMax: 9}, nil, false},
		{"background listed", Gate{BackgroundIn: []model.Background{model.BackgroundOK}}, nil, true},
		{"background not listed", Gate{BackgroundIn: []model.Background{model.BackgroundRich}}, nil, false},
		{"track not listed", Gate{TrackIn: []model.Track{model.TrackArts}}, nil, false},
		{"route required but none", Gate{RouteIn: []model.Route{model.RouteCareer}}, nil, false},
		{"route matches", Gate{RouteIn: []model.Route{model.RouteCareer}}, func(s Snapshot) Snapshot {
			s.Route = model.RouteCareer
			return s
		}, true},
		{"social too low", Gate{SocialMin: 41}, nil, false},
		{"social too high", Gate{SocialMax: 39}, nil, false},
		{"forbidden flag", Gate{ForbidAny: []string{"debt"}}, func(s Snapshot) Snapshot {
			s.Flags = map[string]bool{"debt": true}
			return s
		}, false},
		{"forbidden flag unset", Gate{ForbidAny: []string{"debt"}}, nil, true},
		{"require all partially", Gate{RequireAll: []string{"a", "b"}}, func(s Snapshot) Snapshot {
			s.Flags = map[string]bool{"a": true}
			return s
		}, false},
		{"require any", Gate{RequireAny: []string{"a", "b"}}, func(s Snapshot) Snapshot {
			s.Flags = map[string]bool{"b": true}
			return s
		}, true},
		{"require any none", Gate{RequireAny: []string{"a", "b"}}, nil, false},
		{"false flag counts as unset", Gate{RequireAll: []string{"a"}}, func(s Snapshot) Snapshot {
			s.Flags = map[string]bool{"a": false}
			return s
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			if tt.snap != nil {
				snap = tt.snap(snap)
			}
			assert.Equal(t, tt.want, tt.gate.Allows(snap))
		})
	}
}

func TestMatchesRequiresEveryGate(t *testing.T) {
	ev := &Event{ID: "x", Gates: []Gate{{YearMin: 1}, {SocialMin: 80}}}
	assert.False(t, Matches(ev, neutral()))
	assert.True(t, Matches(&Event{ID: "y"}, neutral()))
}

func TestCooldownBoundary(t *testing.T) {
	ev := &Event{ID: "cd", Weight: 1, CooldownWeeks: 3}
	sel := NewSelector([]*Event{ev})

	snap := neutral()
	snap.Week = 5
	sel.Record(ev, AbsWeek(1, 1, 5))
	assert.Equal(t, 8, sel.CooldownUntil("cd"))

	for w := 6; w <= 8; w++ {
		snap.Week = w
		assert.Empty(t, sel.Candidates(snap), "week %d", w)
	}
	snap.Week = 9
	assert.Len(t, sel.Candidates(snap), 1)
}

func TestAbsWeekIsMonotonic(t *testing.T) {
	assert.Equal(t, 1, AbsWeek(1, 1, 1))
	assert.Equal(t, 17, AbsWeek(1, 2, 1))
	assert.Equal(t, 33, AbsWeek(2, 1, 1))
	assert.Less(t, AbsWeek(1, 2, 16), AbsWeek(2, 1, 1))
}

func TestPickEmpty(t *testing.T) {
	sel := NewSelector([]*Event{{ID: "late", Weight: 1, Gates: []Gate{{YearMin: 4}}}})
	ev, ok := sel.Pick(neutral(), fixedSource{0.5})
	assert.False(t, ok)
	assert.Nil(t, ev)
}

func TestPickWalksCumulativeWeights(t *testing.T) {
	a := &Event{ID: "a", Weight: 1}
	b := &Event{ID: "b", Weight: 3}
	sel := NewSelector([]*Event{a, b})

	ev, ok := sel.Pick(neutral(), fixedSource{0.2})
	require.True(t, ok)
	assert.Equal(t, "a", ev.ID)

	ev, _ = sel.Pick(neutral(), fixedSource{0.3})
	assert.Equal(t, "b", ev.ID)
}

func TestPickDistribution(t *testing.T) {
	evs := []*Event{{ID: "a", Weight: 1}, {ID: "b", Weight: 3}, {ID: "c", Weight: 6}}
	sel := NewSelector(evs)
	rng := random.NewSeeded(1)

	const draws = 200000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		ev, ok := sel.Pick(neutral(), rng)
		require.True(t, ok)
		counts[ev.ID]++
	}
	for _, ev := range evs {
		got := float64(counts[ev.ID]) / draws
		assert.InDelta(t, ev.Weight/10, got, 0.01, ev.ID)
	}
}

func TestWeightModifiers(t *testing.T) {
	plain := &Event{ID: "plain", Weight: 5}
	lucky := &Event{ID: "lucky", Weight: 5, Tags: []string{TagBreakthrough}}
	sel := NewSelector([]*Event{plain, lucky})

	snap := neutral()
	assert.InDelta(t, 5.0, sel.Weight(plain, snap), 1e-9)
	assert.InDelta(t, 5.0, sel.Weight(lucky, snap), 1e-9)

	snap.Social = 90
	// luck (90-50)/20 = 2 gives x1.1; breakthrough adds x1.6.
	assert.InDelta(t, 5.5, sel.Weight(plain, snap), 1e-9)
	assert.InDelta(t, 8.8, sel.Weight(lucky, snap), 1e-9)
	assert.Greater(t, sel.Weight(lucky, snap), sel.Weight(plain, snap))

	snap.Social = 60
	assert.InDelta(t, sel.Weight(plain, snap), sel.Weight(lucky, snap), 1e-9)

	snap.Social = 50
	snap.Luck = 10
	assert.InDelta(t, 5*1.15, sel.Weight(plain, snap), 1e-9, "luck is clamped at 3")
	snap.Luck = -10
	assert.InDelta(t, 5*0.9, sel.Weight(plain, snap), 1e-9, "luck is clamped at -2")
}

func TestWeightFloor(t *testing.T) {
	sel := NewSelector(nil)
	assert.Equal(t, MinWeight, sel.Weight(&Event{ID: "z", Weight: 0}, neutral()))
}

func TestHistoryPenaltyAndEviction(t *testing.T) {
	target := &Event{ID: "target", Weight: 4}
	sel := NewSelector([]*Event{target})

	sel.Record(target, 1)
	assert.InDelta(t, 1.0, sel.Weight(target, neutral()), 1e-9)

	for i := 0; i < HistoryLen; i++ {
		sel.Record(&Event{ID: "filler"}, 2+i)
	}
	assert.Len(t, sel.Recent(), HistoryLen)
	assert.NotContains(t, sel.Recent(), "target")
	assert.InDelta(t, 4.0, sel.Weight(target, neutral()), 1e-9)
}

func TestPresentResolvesDeferredOnce(t *testing.T) {
	calls := 0
	ev := &Event{ID: "job", Options: []Option{
		{Text: "static", Effect: model.Effect{Mood: 1}},
		{Build: func(rng random.Source) Choice {
			calls++
			return Choice{Text: "rolled", Effect: model.Effect{Money: 100 * (1 + rng.Intn(3))}}
		}},
	}}
	p := ev.Present(random.NewSeeded(3))
	require.Len(t, p.Choices, 2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "static", p.Choices[0].Text)
	assert.Equal(t, "rolled", p.Choices[1].Text)
	assert.Contains(t, []int{100, 200, 300}, p.Choices[1].Effect.Money)
}

func TestDefaultCatalog(t *testing.T) {
	evs := Default()
	require.NotEmpty(t, evs)

	ids := map[string]bool{}
	for _, ev := range evs {
		assert.False(t, ids[ev.ID], "duplicate id %s", ev.ID)
		ids[ev.ID] = true
		assert.Greater(t, ev.Weight, 0.0, ev.ID)
		assert.NotEmpty(t, ev.Options, ev.ID)
	}

	rng := random.NewSeeded(9)
	for _, id := range []string{"J_TUTOR_INVITE", "J_INTERN_INVITE"} {
		idx := slicesIndex(evs, id)
		require.GreaterOrEqual(t, idx, 0, id)
		p := evs[idx].Present(rng)
		pay := p.Choices[0].Effect.Money
		assert.Zero(t, pay%jobPayPerDay, id)
		assert.GreaterOrEqual(t, pay, 2*jobPayPerDay, id)
		assert.LessOrEqual(t, pay, 3*jobPayPerDay, id)
	}
}

func TestDefaultCatalogGatesByRoute(t *testing.T) {
	sel := NewSelector(Default())
	snap := neutral()
	snap.Year = 3
	snap.Social = 65

	hasID := func(evs []*Event, id string) bool { return slicesIndex(evs, id) >= 0 }

	assert.False(t, hasID(sel.Candidates(snap), "RARE_OFFER_SEED"))
	snap.Route = model.RouteCareer
	assert.True(t, hasID(sel.Candidates(snap), "RARE_OFFER_SEED"))
	assert.False(t, hasID(sel.Candidates(snap), "C_OFFER_LETTER"))

	snap.Flags = map[string]bool{"offerSeed": true}
	assert.False(t, hasID(sel.Candidates(snap), "RARE_OFFER_SEED"))
	assert.True(t, hasID(sel.Candidates(snap), "C_OFFER_LETTER"))
}

func slicesIndex(evs []*Event, id string) int {
	return slices.IndexFunc(evs, func(ev *Event) bool { return ev.ID == id })
}
