package config

import (
	_ "embed"
)

//go:embed defaults/riverraid.yaml
var defaultRiverRaidYAML []byte

// DefaultRiverRaidConfig returns the built-in River Raid configuration.
// It mirrors defaults/riverraid.yaml and is used if the embedded file
// cannot be parsed.
func DefaultRiverRaidConfig() RiverRaidConfig {
	return RiverRaidConfig{
		Player: PlayerConfig{
			StartSpeed:      22,
			MinSpeed:        20,
			Acceleration:    2,
			Deceleration:    1,
			LateralSpeed:    5,
			Margin:          0.5,
			MaxFuel:         100,
			FuelConsumption: 2,
			FuelRefill:      25,
			Altitude:        0.01,
			Size:            Extents{X: 1, Y: 1, Z: 2},
		},
		Camera: CameraConfig{
			Start:        Point{X: 0, Y: 5, Z: 10},
			ScrollSpeed:  5,
			PlayerOffset: 5,
			LookAhead:    10,
		},
		River: RiverConfig{
			MinWidth:       5,
			MaxWidth:       15,
			WidthFrequency: 0.01,
			CurveAmplitude: 2,
			CurveFrequency: 0.1,
		},
		Streaming: StreamingConfig{
			LookAhead:      50,
			TrailingBuffer: 20,
		},
		Banks: BankConfig{
			StreamConfig: StreamConfig{FirstZ: -20, Spacing: 10},
			Width:        1,
			Height:       2,
			Depth:        5,
		},
		Depots: DepotConfig{
			StreamConfig: StreamConfig{FirstZ: -40, Spacing: 50},
			Radius:       0.8,
			Height:       0.5,
		},
		Enemies: EnemyConfig{
			StreamConfig: StreamConfig{FirstZ: -30, Spacing: 10},
			TurretChance: 0.7,
			Turret: TurretConfig{
				Radius:       0.4,
				Height:       0.8,
				MountHeight:  0,
				FireCooldown: 1.5,
				Range:        50,
			},
			Helicopter: HelicopterConfig{
				Speed:     10,
				Altitude:  0.01,
				RotorSpin: 15,
				Size:      Extents{X: 2, Y: 0.3, Z: 2},
			},
		},
		Bridges: BridgeConfig{
			StreamConfig: StreamConfig{FirstZ: -100, Spacing: 150},
			Height:       1,
			Depth:        2,
		},
		Weapons: WeaponsConfig{
			Player: ShotConfig{
				Speed:    25,
				Radius:   0.1,
				Length:   0.5,
				MaxRange: 100,
				MaxLive:  1,
			},
			Enemy: ShotConfig{
				Speed:    15,
				Radius:   0.15,
				Length:   0.6,
				MaxRange: 100,
			},
		},
		Scoring: ScoringConfig{
			DistanceMultiplier: 1,
			Turret:             50,
			Helicopter:         100,
			Bridge:             50,
			Depot:              25,
			HighScoreKey:       "riverRaidHighScore",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "distance",
				Rate: 0.0001,
			},
			Scaling: ScalingConfig{
				SpeedBoost: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRiverRaidYAML
}
