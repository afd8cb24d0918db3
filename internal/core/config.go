package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Delta returns the fixed simulation step in seconds.
func (c RuntimeConfig) Delta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Distance float64 // How far the run has gone, in world units
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Reason   string  // Why the game ended, empty while running
}

// EventKind classifies a gameplay event reported by a tick.
type EventKind int

const (
	EventFuelCollected EventKind = iota
	EventTargetDestroyed
	EventNewHighScore
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFuelCollected:
		return "fuel_collected"
	case EventTargetDestroyed:
		return "target_destroyed"
	case EventNewHighScore:
		return "new_high_score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something noteworthy that happened during a tick.
// The platform logs events; games never depend on them being consumed.
type Event struct {
	Kind   EventKind
	Detail string // Target kind, game over reason, etc.
	Value  int    // Points, fuel amount or score
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
