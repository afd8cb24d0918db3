// Package config provides YAML-based game configuration loading and
// difficulty management for River Raid.
package config

import (
	"errors"
	"fmt"
)

// RiverRaidConfig contains all tunables of the River Raid simulation.
type RiverRaidConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	River      RiverConfig      `yaml:"river"`
	Streaming  StreamingConfig  `yaml:"streaming"`
	Banks      BankConfig       `yaml:"banks"`
	Depots     DepotConfig      `yaml:"depots"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Bridges    BridgeConfig     `yaml:"bridges"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Point is a position in world units. Forward is -Z.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Extents is the full size of a bounding box on each axis.
type Extents struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PlayerConfig defines the player craft's kinematics and fuel.
type PlayerConfig struct {
	StartSpeed      float64 `yaml:"start_speed"`      // Forward speed surplus at reset
	MinSpeed        float64 `yaml:"min_speed"`        // Cruising floor
	Acceleration    float64 `yaml:"acceleration"`     // Units/s² while forward is held
	Deceleration    float64 `yaml:"deceleration"`     // Units/s² otherwise
	LateralSpeed    float64 `yaml:"lateral_speed"`    // Units/s per held direction
	Margin          float64 `yaml:"margin"`           // Gap kept from the river edge
	MaxFuel         float64 `yaml:"max_fuel"`         // Fuel cap (and starting fuel)
	FuelConsumption float64 `yaml:"fuel_consumption"` // Units/s
	FuelRefill      float64 `yaml:"fuel_refill"`      // Fuel per depot collected
	Altitude        float64 `yaml:"altitude"`         // Center height above the water
	Size            Extents `yaml:"size"`
}

// CameraConfig defines how the camera trails the scroll.
type CameraConfig struct {
	Start        Point   `yaml:"start"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Baseline scroll before the speed multiplier
	PlayerOffset float64 `yaml:"player_offset"` // Craft distance ahead of the camera
	LookAhead    float64 `yaml:"look_ahead"`    // Look-target distance ahead of the craft
}

// RiverConfig defines the meandering river shape.
type RiverConfig struct {
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
	WidthFrequency float64 `yaml:"width_frequency"` // Radians per unit of camera Z
	CurveAmplitude float64 `yaml:"curve_amplitude"` // Bank lateral offset amplitude
	CurveFrequency float64 `yaml:"curve_frequency"` // Radians per unit of spawn Z
}

// StreamingConfig defines the window around the camera where entities live.
type StreamingConfig struct {
	LookAhead      float64 `yaml:"look_ahead"`      // Spawn when the camera is this close to a cursor
	TrailingBuffer float64 `yaml:"trailing_buffer"` // Prune entities this far behind the camera
}

// StreamConfig defines where a stream starts and how far apart spawns are.
type StreamConfig struct {
	FirstZ  float64 `yaml:"first_z"`
	Spacing float64 `yaml:"spacing"`
}

// BankConfig defines river bank segments.
type BankConfig struct {
	StreamConfig `yaml:",inline"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Depth        float64 `yaml:"depth"`
}

// DepotConfig defines fuel depots.
type DepotConfig struct {
	StreamConfig `yaml:",inline"`
	Radius       float64 `yaml:"radius"`
	Height       float64 `yaml:"height"`
}

// EnemyConfig defines the enemy stream and both enemy kinds.
type EnemyConfig struct {
	StreamConfig `yaml:",inline"`
	TurretChance float64          `yaml:"turret_chance"` // Probability a spawn is a turret
	Turret       TurretConfig     `yaml:"turret"`
	Helicopter   HelicopterConfig `yaml:"helicopter"`
}

// TurretConfig defines stationary bank turrets.
type TurretConfig struct {
	Radius       float64 `yaml:"radius"`
	Height       float64 `yaml:"height"`
	MountHeight  float64 `yaml:"mount_height"`  // Base elevation above the water
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	Range        float64 `yaml:"range"`         // Engagement distance
}

// HelicopterConfig defines patrolling helicopters.
type HelicopterConfig struct {
	Speed     float64 `yaml:"speed"`
	Altitude  float64 `yaml:"altitude"`
	RotorSpin float64 `yaml:"rotor_spin"` // Radians per second, visual only
	Size      Extents `yaml:"size"`
}

// BridgeConfig defines bridges spanning the river.
type BridgeConfig struct {
	StreamConfig `yaml:",inline"`
	Height       float64 `yaml:"height"`
	Depth        float64 `yaml:"depth"`
}

// WeaponsConfig defines player and enemy projectiles.
type WeaponsConfig struct {
	Player ShotConfig `yaml:"player"`
	Enemy  ShotConfig `yaml:"enemy"`
}

// ShotConfig defines a projectile type.
type ShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Length   float64 `yaml:"length"`
	MaxRange float64 `yaml:"max_range"` // Discard distance ahead of the camera
	MaxLive  int     `yaml:"max_live"`  // Live shot limit, 0 = unlimited
	Cooldown float64 `yaml:"cooldown"`  // Seconds between shots, 0 = none
}

// ScoringConfig defines point values and the persisted high score key.
type ScoringConfig struct {
	DistanceMultiplier float64 `yaml:"distance_multiplier"`
	Turret             int     `yaml:"turret"`
	Helicopter         int     `yaml:"helicopter"`
	Bridge             int     `yaml:"bridge"`
	Depot              int     `yaml:"depot"`
	HighScoreKey       string  `yaml:"high_score_key"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how the speed multiplier grows.
type ProgressionConfig struct {
	Type string  `yaml:"type"` // "distance", "time", or "none"
	Rate float64 `yaml:"rate"` // Multiplier gained per unit of distance (or second)
}

// ScalingConfig defines the magnitude of the initial difficulty boost.
type ScalingConfig struct {
	SpeedBoost float64 `yaml:"speed_boost"` // Multiplier added at initial_level 1.0
}

// Validate reports every tunable that would break the simulation.
func (c RiverRaidConfig) Validate() error {
	var errs []error

	if c.River.MinWidth <= 0 || c.River.MaxWidth < c.River.MinWidth {
		errs = append(errs, fmt.Errorf("river: width range [%g, %g] is invalid", c.River.MinWidth, c.River.MaxWidth))
	}
	if c.Player.MinSpeed < 0 {
		errs = append(errs, fmt.Errorf("player: min_speed %g must not be negative", c.Player.MinSpeed))
	}
	if c.Player.MaxFuel <= 0 {
		errs = append(errs, fmt.Errorf("player: max_fuel %g must be positive", c.Player.MaxFuel))
	}
	streams := []struct {
		name string
		cfg  StreamConfig
	}{
		{"banks", c.Banks.StreamConfig},
		{"depots", c.Depots.StreamConfig},
		{"enemies", c.Enemies.StreamConfig},
		{"bridges", c.Bridges.StreamConfig},
	}
	for _, s := range streams {
		if s.cfg.Spacing <= 0 {
			errs = append(errs, fmt.Errorf("%s: spacing %g must be positive", s.name, s.cfg.Spacing))
		}
	}
	if c.Enemies.TurretChance < 0 || c.Enemies.TurretChance > 1 {
		errs = append(errs, fmt.Errorf("enemies: turret_chance %g must be within [0, 1]", c.Enemies.TurretChance))
	}
	if c.Weapons.Player.MaxLive < 0 {
		errs = append(errs, fmt.Errorf("weapons: player max_live %d must not be negative", c.Weapons.Player.MaxLive))
	}
	if c.Scoring.HighScoreKey == "" {
		errs = append(errs, errors.New("scoring: high_score_key must be set"))
	}
	switch c.Difficulty.Progression.Type {
	case "distance", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
