package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orayew2002/pitch-card/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvDB, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvDB, "")

	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "drafts/pitchcard.db", cfg.Store.Path)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvAddr, ":7000")
	t.Setenv(EnvDB, "/tmp/x.db")

	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	path := filepath.Join("testdata", "invalid.yaml")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Contains(t, err.Error(), path)
}

func TestLoadPitches(t *testing.T) {
	got, err := LoadPitches(filepath.Join("testdata", "pitches.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Pitch{
		{Name: "Fastball", Abbreviation: "FB", Percentage: "60"},
		{Name: "Curveball", Abbreviation: "CB", Percentage: "40"},
	}, got)

	got, err = LoadPitches(filepath.Join("testdata", "pitches.json"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.Percentage("70"), got[0].Percentage)
	assert.Equal(t, 100.0, domain.TotalPercentage(got))
}

func TestLoadPitchesErrors(t *testing.T) {
	_, err := LoadPitches(filepath.Join("testdata", "nope.yaml"))
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	_, err = LoadPitches(filepath.Join("testdata", "pitches.txt"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
	assert.Contains(t, err.Error(), "unsupported extension")

	_, err = LoadPitches(filepath.Join("testdata", "invalid.yaml"))
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}
