package riverraid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Phase is the session state machine. GameOver is terminal until Reset.
type Phase uint8

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "running"
}

// Reason names the hazard that ended a session.
type Reason string

const (
	ReasonHitBank    Reason = "Hit Bank!"
	ReasonHitEnemy   Reason = "Hit Enemy!"
	ReasonHitBridge  Reason = "Hit Bridge!"
	ReasonHitByEnemy Reason = "Hit by Enemy!"
	ReasonOutOfFuel  Reason = "Out of Fuel!"
)

// points returns the destruction bonus for a target kind.
func (s *Session) points(k Kind) int {
	sc := s.cfg.Scoring
	switch k {
	case KindTurret:
		return sc.Turret
	case KindHelicopter:
		return sc.Helicopter
	case KindBridge:
		return sc.Bridge
	case KindDepot:
		return sc.Depot
	default:
		return 0
	}
}

// total is the distance score plus every destruction bonus so far.
func (s *Session) total() int {
	return int(math.Floor(s.distance*s.cfg.Scoring.DistanceMultiplier)) + s.destruction
}

// rescore recomputes the running score from distance. Distance and the
// bonus only grow, so the score never drops.
func (s *Session) rescore() {
	s.score = s.total()
}

// end moves the session to GameOver. Only the first call has any effect:
// it freezes the clock, discards hostile shots, settles the final score
// and persists a new best.
func (s *Session) end(reason Reason) {
	if s.phase == GameOver {
		return
	}
	s.phase = GameOver
	s.reason = reason
	s.score = s.total()
	for _, sh := range s.enemyShots.Items() {
		kill(sh)
	}

	if s.score > s.high {
		s.high = s.score
		s.store.Set(s.cfg.Scoring.HighScoreKey, s.high)
		s.emit(core.EventNewHighScore, "", s.high)
	}

	s.display.Status(fmt.Sprintf("Game Over - %s Final Score: %d", reason, s.score))
	s.display.Score(scoreLine(s.score, s.high))
	s.emit(core.EventGameOver, string(reason), s.score)
}

func statusLine(fuel float64) string {
	return fmt.Sprintf("Fuel: %d", int(math.Floor(fuel)))
}

func scoreLine(score, high int) string {
	return fmt.Sprintf("Score: %d | High: %d", score, high)
}
