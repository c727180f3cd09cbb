package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvmine/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Mining.MinSupport)
	assert.Equal(t, 0.6, cfg.Mining.MinConfidence)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, ',', cfg.Input.SeparatorRune())
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvmine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mining:
  min_support: 5
  min_confidence: 0.8
input:
  separator: ";"
logger:
  level: debug
`), 0o600))
	t.Setenv("LVMINE_MINING_MAX_LENGTH", "3")

	v := config.NewViper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("min-support", 0, "")
	require.NoError(t, config.BindFlags(v, fs, map[string]string{
		"min-support": "mining.min_support",
		"absent":      "mining.strict_rules",
	}))

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Mining.MinSupport, "unset flag keeps the file value")
	assert.Equal(t, 0.8, cfg.Mining.MinConfidence)
	assert.Equal(t, 3, cfg.Mining.MaxLength)
	assert.Equal(t, ';', cfg.Input.SeparatorRune())
	assert.Equal(t, "debug", cfg.Logger.Level)

	require.NoError(t, fs.Parse([]string{"--min-support", "9"}))
	cfg, err = config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Mining.MinSupport, "explicit flag wins")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	t.Setenv("LVMINE_MINING_MIN_CONFIDENCE", "1.5")
	chdir(t, t.TempDir())
	_, err = config.Load(config.NewViper(), "")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
