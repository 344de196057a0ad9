package catalog

import (
	"testing"

	"github.com/rhyrak/campus-sim/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTrack(t *testing.T) {
	tests := map[string]model.Track{
		"science":   model.TrackScience,
		" STEM ":    model.TrackScience,
		"理工":        model.TrackScience,
		"医学":        model.TrackMedicine,
		"med":       model.TrackMedicine,
		"商科":        model.TrackBusiness,
		"Business":  model.TrackBusiness,
		"":          model.TrackArts,
		"astronomy": model.TrackArts,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeTrack(in), "input %q", in)
	}
}

func TestLoadAllTracks(t *testing.T) {
	for _, track := range model.Tracks {
		t.Run(string(track), func(t *testing.T) {
			pool, err := Load(track)
			require.NoError(t, err)
			require.NotEmpty(t, pool)

			locked := 0
			for _, c := range pool {
				if c.Locked {
					locked++
					assert.True(t, c.Required, "%s locked but not required", c.Name)
				}
			}
			assert.Equal(t, 20, locked, "mandatory sequence is shared by every track")
		})
	}
}

func TestLoadScienceShape(t *testing.T) {
	pool := MustLoad(model.TrackScience)

	pe, requiredTrack := 0, 0
	for _, c := range pool {
		if c.Area == "PE" && c.Locked {
			pe++
		}
		if c.Area == "Science" && c.Required && !c.Locked {
			requiredTrack++
		}
	}
	assert.Equal(t, 8, pe)
	assert.Equal(t, 16, requiredTrack)
}

func TestLoadReturnsCopies(t *testing.T) {
	first := MustLoad(model.TrackArts)
	first[0].Credits = 99
	first[0].Slots = nil

	second := MustLoad(model.TrackArts)
	assert.Equal(t, 1, second[0].Credits)
	assert.NotEmpty(t, second[0].Slots)
}

func TestLoadUnknownTrack(t *testing.T) {
	_, err := Load(model.Track("astronomy"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := &model.Course{ID: "a", Name: "A", Credits: 2, Difficulty: 3, Area: "General", SuggestedTerm: 1, Slots: []model.TimeSlot{"Mon-2"}}
	require.NoError(t, Validate([]*model.Course{good}))

	lockedOnly := good.Clone()
	lockedOnly.ID = "b"
	lockedOnly.Locked = true

	badSlot := good.Clone()
	badSlot.ID = "c"
	badSlot.Slots = []model.TimeSlot{"Sun-9"}

	badTerm := good.Clone()
	badTerm.ID = "d"
	badTerm.SuggestedTerm = 9

	tests := map[string]*model.Course{
		"locked not required": lockedOnly,
		"bad slot":            badSlot,
		"term out of range":   badTerm,
		"duplicate id":        good.Clone(),
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Validate([]*model.Course{good, c}))
		})
	}
}
