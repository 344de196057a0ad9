package simulate

import (
	"bytes"
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/campus-sim/internal/scenario"
	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "science", cfg.Track)
	assert.Equal(t, "ok", cfg.Background)
	assert.Equal(t, 1, cfg.Runs)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, "en", cfg.Lang)
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("CAMPUS_TRACK", "business")
	t.Setenv("CAMPUS_RUNS", "5")

	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-runs", "2", "-seed", "9", "-route", "career"})
	require.NoError(t, err)
	assert.Equal(t, "business", cfg.Track)
	assert.Equal(t, 2, cfg.Runs)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "career", cfg.Route)
}

func TestRunBatchArchivesEveryRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	var out, errOut bytes.Buffer
	cfg := Config{Track: "arts", Background: "mid", Seed: 5, Runs: 3, Parallel: 2, DBPath: dbPath, Lang: "en"}

	require.NoError(t, Run(context.Background(), cfg, &out, &errOut))
	assert.Contains(t, out.String(), "runs: 3")
	assert.Equal(t, 5, strings.Count(out.String(), "\n"))

	store, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	seeds := map[int64]bool{}
	for _, r := range runs {
		seeds[r.Seed] = true
		full, err := store.GetRun(context.Background(), r.ID)
		require.NoError(t, err)
		assert.Len(t, full.Terms, 8)
	}
	assert.Equal(t, map[int64]bool{5: true, 6: true, 7: true}, seeds)
}

func TestRunBatchIsDeterministicPerSeed(t *testing.T) {
	results := make([][]runResult, 2)
	for i := range results {
		var err error
		results[i], err = runBatch(context.Background(), Config{Track: "science", Background: "ok", Seed: 21, Runs: 2, Parallel: 2}, quietLogger())
		require.NoError(t, err)
	}
	for i := range results[0] {
		assert.Equal(t, results[0][i].Seed, results[1][i].Seed)
		assert.Equal(t, results[0][i].Summary, results[1][i].Summary)
	}
}

func TestRunRejectsZeroRuns(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Run(context.Background(), Config{Track: "arts", Runs: 0}, &out, &errOut)
	require.Error(t, err)
}

func TestRunScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "money.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
return Scenario.new()
  :config({seed = 2})
  :set({money = 50})
  :expect_money_at_least(100)
`), 0o600))

	var out, errOut bytes.Buffer
	err := Run(context.Background(), Config{Scenario: path, Lang: "en"}, &out, &errOut)
	require.ErrorIs(t, err, scenario.ErrAssertion)
	assert.Contains(t, out.String(), `scenario "money" failed (1)`)
	assert.Contains(t, out.String(), "money is 50, want at least 100")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
