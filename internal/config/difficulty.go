package config

import "math"

// DifficultyManager calculates the global speed multiplier from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Base returns the multiplier at zero progress.
func (d *DifficultyManager) Base() float64 {
	return 1.0 + d.initialLevel*d.cfg.Scaling.SpeedBoost
}

// Multiplier returns the global speed multiplier. It grows linearly with
// distance traveled (or elapsed seconds for "time" progression) and never
// drops below Base.
func (d *DifficultyManager) Multiplier(distance, elapsed float64) float64 {
	base := d.Base()
	if !d.IsEnabled() {
		return base
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance", "":
		progress = distance
	case "time":
		progress = elapsed
	default:
		return base
	}

	return base + math.Max(0, progress)*d.cfg.Progression.Rate
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
