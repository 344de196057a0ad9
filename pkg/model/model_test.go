package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCourseID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want CourseID
	}{
		{"Calculus I", "Calculus_I"},
		{"  Linear Algebra ", "Linear_Algebra"},
		{"C++ & Systems", "C__Systems"},
		{"Café Culture", "Cafe_Culture"},
		{"Physical Education VIII", "Physical_Education_VIII"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeCourseID(tt.name))
		})
	}
}

func TestParseTimeSlots(t *testing.T) {
	t.Parallel()
	slots, err := ParseTimeSlots("Thu-2|Thu-3")
	require.NoError(t, err)
	assert.Equal(t, []TimeSlot{"Thu-2", "Thu-3"}, slots)

	slots, err = ParseTimeSlots("")
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = ParseTimeSlots("Sat-1")
	assert.Error(t, err)
	_, err = ParseTimeSlots("Mon-4")
	assert.Error(t, err)

	assert.Len(t, AllTimeSlots(), 15)
}

func TestConflicts(t *testing.T) {
	t.Parallel()
	a := &Course{ID: "a", Slots: []TimeSlot{"Mon-1", "Tue-2"}}
	b := &Course{ID: "b", Slots: []TimeSlot{"Tue-2"}}
	c := &Course{ID: "c", Slots: []TimeSlot{"Wed-3"}}
	free := &Course{ID: "free"}

	assert.True(t, a.ConflictsWith(b))
	assert.False(t, a.ConflictsWith(c))
	assert.False(t, free.ConflictsWith(a))
	assert.False(t, a.ConflictsWith(free))
	assert.True(t, b.ConflictsWithAny([]*Course{c, a}))
	assert.False(t, a.ConflictsWithAny([]*Course{a}))
}

func TestTimetablePlace(t *testing.T) {
	t.Parallel()
	tt := NewTimetable()
	a := &Course{ID: "a", Slots: []TimeSlot{"Mon-1", "Tue-2"}}
	b := &Course{ID: "b", Slots: []TimeSlot{"Fri-3", "Tue-2"}}

	require.True(t, tt.Place(a))
	assert.False(t, tt.IsAvailable("Mon-1"))
	assert.False(t, tt.Place(b))
	assert.True(t, tt.IsAvailable("Fri-3"), "failed placement must not leave partial state")
	assert.Empty(t, tt.Collisions())

	tt.Add(b)
	assert.Equal(t, map[TimeSlot][]CourseID{"Tue-2": {"a", "b"}}, tt.Collisions())
}

func TestPlanLookupReturnsCopy(t *testing.T) {
	t.Parallel()
	pool := []*Course{{ID: "x", Name: "X", Credits: 2, Slots: []TimeSlot{"Mon-2"}}}
	p := NewCurriculumPlan(TrackArts, pool)
	p.PlannedByTerm[1] = []CourseID{"x"}

	c, ok := p.Lookup("x")
	require.True(t, ok)
	c.Credits = 9
	c.Slots[0] = "Fri-1"

	assert.Equal(t, 2, pool[0].Credits)
	assert.Equal(t, TimeSlot("Mon-2"), pool[0].Slots[0])
	assert.Equal(t, 2, p.TermCredits(1))
	_, ok = p.Lookup("missing")
	assert.False(t, ok)
}
