package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type envTestConfig struct {
	Runs  int    `env:"CAMPUS_TEST_RUNS" envDefault:"3"`
	Track string `env:"CAMPUS_TEST_TRACK" envDefault:"arts"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, "arts", cfg.Track)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CAMPUS_TEST_TRACK", "science")
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, "science", cfg.Track)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("CAMPUS_TEST_RUNS", "many")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	logger := NewLogger(&buf, true)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("shown", "week", 3)
	assert.Contains(t, buf.String(), "week=3")
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, language.German, Language("de"))
	assert.Equal(t, language.English, Language("not a tag!"))
}

func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("CAMPUS_TEST_EXITF") == "1" {
		Exitf("fatal: %s", "broke")
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "CAMPUS_TEST_EXITF=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: broke")
}
