package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/campus-sim/internal/sim"
	"github.com/rhyrak/campus-sim/pkg/model"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSaveAndGetRun(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	cet4 := 512

	id, err := store.SaveRun(ctx, RunRecord{
		Track:      "science",
		Background: "ok",
		Route:      "research",
		Seed:       7,
		Credits:    150,
		Graduated:  true,
		GPA:        3.1,
		CET4:       &cet4,
		SCI:        1,
		Money:      900,
		Terms: []TermRecord{
			{Year: 1, Term: 2, GPA: 3.2, Credits: 20},
			{Year: 1, Term: 1, GPA: 3.0, Credits: 19},
		},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := store.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "science", got.Track)
	assert.Equal(t, int64(7), got.Seed)
	assert.True(t, got.Graduated)
	assert.InDelta(t, 3.1, got.GPA, 1e-9)
	require.NotNil(t, got.CET4)
	assert.Equal(t, 512, *got.CET4)
	assert.Nil(t, got.CET6)
	assert.False(t, got.CreatedAt.IsZero())
	require.Len(t, got.Terms, 2)
	assert.Equal(t, 1, got.Terms[0].Term)
	assert.Equal(t, 2, got.Terms[1].Term)
}

func TestGetRunNotFound(t *testing.T) {
	store := openTempStore(t)
	_, err := store.GetRun(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRunValidation(t *testing.T) {
	store := openTempStore(t)
	_, err := store.SaveRun(context.Background(), RunRecord{})
	require.Error(t, err)
}

func TestSaveTerms(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	id, err := store.SaveRun(ctx, RunRecord{ID: "run-1", Track: "arts", Background: "poor"})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)

	require.NoError(t, store.SaveTerms(ctx, id, []TermRecord{{Year: 1, Term: 1, GPA: 2.5, Credits: 18}}))
	require.NoError(t, store.SaveTerms(ctx, id, []TermRecord{{Year: 1, Term: 1, GPA: 2.8, Credits: 20}}))

	got, err := store.GetRun(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Terms, 1)
	assert.Equal(t, 20, got.Terms[0].Credits)

	require.ErrorIs(t, store.SaveTerms(ctx, "missing", nil), ErrNotFound)
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, track := range []string{"arts", "science", "business"} {
		_, err := store.SaveRun(ctx, RunRecord{Track: track, Background: "ok", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "business", runs[0].Track)
	assert.Equal(t, "science", runs[1].Track)

	_, err = store.ListRuns(ctx, 0)
	require.Error(t, err)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(path)
	require.NoError(t, err)
	id, err := store.SaveRun(context.Background(), RunRecord{Track: "medicine", Background: "mid"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.GetRun(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "medicine", got.Track)
}

func TestRecordFromSummary(t *testing.T) {
	sum := &sim.Summary{
		Track:      model.TrackBusiness,
		Background: model.BackgroundRich,
		Route:      model.RouteCareer,
		Credits:    40,
		GPA:        2.9,
		CET4:       &sim.Cert{Score: 470, Pass: true},
		Milestones: sim.Milestones{Offers: 1},
		Terms:      []sim.TermReport{{Year: 1, Term: 1, GPA: 2.9, Credits: 20}},
	}
	rec := RecordFromSummary("abc", 11, sum)
	assert.Equal(t, "business", rec.Track)
	assert.Equal(t, "career", rec.Route)
	assert.Equal(t, int64(11), rec.Seed)
	assert.Equal(t, 1, rec.Offers)
	require.NotNil(t, rec.CET4)
	assert.Equal(t, 470, *rec.CET4)
	assert.Nil(t, rec.CET6)
	assert.Equal(t, []TermRecord{{Year: 1, Term: 1, GPA: 2.9, Credits: 20}}, rec.Terms)
}
