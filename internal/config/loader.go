package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "riverraid.yaml"

// LoadRiverRaid loads River Raid configuration.
// Search order: customPath -> ~/.riverraid/configs/riverraid.yaml -> ./configs/riverraid.yaml -> embedded default
//
// Files are decoded over the defaults so a partial file only overrides the
// keys it names. The result is always validated.
func LoadRiverRaid(customPath string) (RiverRaidConfig, error) {
	cfg := DefaultRiverRaidConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := DefaultRiverRaidConfig()
		if err := yaml.Unmarshal(data, &loaded); err == nil {
			return loaded, loaded.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRiverRaidYAML, &cfg); err != nil {
		return DefaultRiverRaidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riverraid", "configs", filename)
}

// ApplyRiverRaidPreset modifies the config based on a difficulty preset.
func ApplyRiverRaidPreset(cfg *RiverRaidConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust fuel economy based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.FuelConsumption = 1.5
		cfg.Player.FuelRefill = 30
	case DifficultyHard:
		cfg.Player.FuelConsumption = 3
		cfg.Player.FuelRefill = 20
	}
}

// RapidFire returns cfg tuned for the rapid fire mode: unlimited live
// player shots gated by a short cooldown.
func RapidFire(cfg RiverRaidConfig) RiverRaidConfig {
	cfg.Weapons.Player.MaxLive = 0
	cfg.Weapons.Player.Cooldown = 0.15
	return cfg
}
