package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RiverRaidConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))
	assert.Equal(t, DefaultRiverRaidConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultRiverRaidConfig().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRiverRaidConfig()
	cfg.River.MaxWidth = 1
	cfg.Banks.Spacing = 0
	cfg.Scoring.HighScoreKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "river:")
	assert.Contains(t, err.Error(), "banks:")
	assert.Contains(t, err.Error(), "high_score_key")
}

func TestLoadRiverRaidCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  max_fuel: 50\nscoring:\n  turret: 75\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadRiverRaid(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Player.MaxFuel)
	assert.Equal(t, 75, cfg.Scoring.Turret)
	// Unnamed keys keep their defaults
	assert.Equal(t, 2.0, cfg.Player.FuelConsumption)
	assert.Equal(t, "riverRaidHighScore", cfg.Scoring.HighScoreKey)
}

func TestLoadRiverRaidErrors(t *testing.T) {
	_, err := LoadRiverRaid(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("river: [unterminated"), 0o644))
	_, err = LoadRiverRaid(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("banks:\n  spacing: -1\n"), 0o644))
	_, err = LoadRiverRaid(invalid)
	assert.ErrorContains(t, err, "banks")
}

func TestApplyRiverRaidPreset(t *testing.T) {
	cfg := DefaultRiverRaidConfig()
	ApplyRiverRaidPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 3.0, cfg.Player.FuelConsumption)

	ApplyRiverRaidPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyNormal, ParsePreset("normal"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("insane"))
}

func TestRapidFire(t *testing.T) {
	cfg := RapidFire(DefaultRiverRaidConfig())
	assert.Equal(t, 0, cfg.Weapons.Player.MaxLive)
	assert.Greater(t, cfg.Weapons.Player.Cooldown, 0.0)
	assert.Equal(t, 1, DefaultRiverRaidConfig().Weapons.Player.MaxLive)
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		distance float64
		elapsed  float64
		want     float64
	}{
		{"default at start", DefaultRiverRaidConfig().Difficulty, 0, 0, 1.0},
		{"default after 10000 units", DefaultRiverRaidConfig().Difficulty, 10000, 0, 2.0},
		{"disabled", DifficultyConfig{Enabled: false, Progression: ProgressionConfig{Type: "distance", Rate: 1}}, 100, 0, 1.0},
		{"none", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none", Rate: 1}}, 100, 0, 1.0},
		{"time", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", Rate: 0.5}}, 100, 2, 2.0},
		{"initial level", DifficultyConfig{Enabled: true, InitialLevel: 1, Scaling: ScalingConfig{SpeedBoost: 0.5}}, 0, 0, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDifficultyManager(tt.cfg)
			assert.InDelta(t, tt.want, dm.Multiplier(tt.distance, tt.elapsed), 1e-9)
		})
	}
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Scaling: ScalingConfig{SpeedBoost: 1}})
	dm.SetInitialLevel(5)
	assert.Equal(t, 2.0, dm.Base())
	dm.SetInitialLevel(-1)
	assert.Equal(t, 1.0, dm.Base())
}
