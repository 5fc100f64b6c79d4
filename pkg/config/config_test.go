package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/us-population/pkg/selection"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2011", cfg.Key)
	assert.Equal(t, "blues", cfg.Theme)
	assert.Equal(t, "/tmp/us-population.json", cfg.Dataset)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.Equal(t, selection.Default(), sel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("US_POPULATION_KEY", "Migration")
	t.Setenv("US_POPULATION_THEME", "turbo")
	t.Setenv("US_POPULATION_LINE_DPI", "96")

	cfg, err := Load()
	require.NoError(t, err)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.Equal(t, selection.Migration, sel.Key)
	assert.Equal(t, selection.Theme("turbo"), sel.Theme)
	assert.Equal(t, 96.0, sel.Line.DPI)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("US_POPULATION_LINE_WIDTH", "wide")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestSelectionRejectsUnknownValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Key = "2020"
	_, err = cfg.Selection()
	assert.ErrorIs(t, err, selection.ErrUnknownKey)

	cfg.Key = "2012"
	cfg.Theme = "sepia"
	_, err = cfg.Selection()
	assert.ErrorIs(t, err, selection.ErrUnknownTheme)
}

// Exitf calls os.Exit, so it runs in a subprocess.
func TestExitf(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "no data")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected *exec.ExitError, got %T: %v", err, err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "fatal: no data")
}
