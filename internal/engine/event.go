package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

// ErrOutOfTurn is returned when an event names a player who is not up.
var ErrOutOfTurn = errors.New("player acted out of turn")

// ErrInvalidPlayerCount is returned for games with no seats.
var ErrInvalidPlayerCount = errors.New("player count must be positive")

type EventType string

const (
	EventGameStarted      EventType = "GameStarted"
	EventTurnStarted      EventType = "TurnStarted"
	EventDiceRolled       EventType = "DiceRolled"
	EventTurnEnded        EventType = "TurnEnded"
	EventThresholdReached EventType = "ThresholdReached"
	EventGameWon          EventType = "GameWon"
)

// Event is the building block of the event sourced engine.
type Event interface {
	Type() EventType
	Apply(state *GameState) error
	Message() string
}

func checkCurrent(state *GameState, player int) error {
	if state.Players() == 0 {
		return fmt.Errorf("no game in progress")
	}
	if player != state.CurrentPlayer() {
		return fmt.Errorf("%w: player %d, expected %d", ErrOutOfTurn, player+1, state.CurrentPlayer()+1)
	}
	return nil
}

// GameStartedEvent seats the players with zero scores.
type GameStartedEvent struct {
	Players int `json:"players"`
	Target  int `json:"target"`
}

func (e *GameStartedEvent) Type() EventType { return EventGameStarted }
func (e *GameStartedEvent) Apply(state *GameState) error {
	if e.Players <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayerCount, e.Players)
	}
	if e.Target <= 0 {
		return fmt.Errorf("target must be positive: %d", e.Target)
	}
	*state = *NewGameState()
	state.Scores = make([]int, e.Players)
	state.Target = e.Target
	return nil
}
func (e *GameStartedEvent) Message() string {
	return fmt.Sprintf("Game started with %d players, playing to %d.", e.Players, e.Target)
}

// TurnStartedEvent opens a player's turn. Final is set once the target has
// been banked, so the player knows the score to beat.
type TurnStartedEvent struct {
	Player    int  `json:"player"`
	Banked    int  `json:"banked"`
	HighScore int  `json:"high_score"`
	Final     bool `json:"final"`
}

func (e *TurnStartedEvent) Type() EventType { return EventTurnStarted }
func (e *TurnStartedEvent) Apply(state *GameState) error {
	return checkCurrent(state, e.Player)
}
func (e *TurnStartedEvent) Message() string {
	return fmt.Sprintf("Player %d's turn (banked %d).", e.Player+1, e.Banked)
}

// DiceRolledEvent records one throw and what it did to the turn.
type DiceRolledEvent struct {
	Player  int           `json:"player"`
	Dice    [2]int        `json:"dice"`
	Sum     int           `json:"sum"`
	Outcome rules.Outcome `json:"outcome"`
	Round   int           `json:"round"`
	Total   int           `json:"total"`
}

func (e *DiceRolledEvent) Type() EventType { return EventDiceRolled }
func (e *DiceRolledEvent) Apply(state *GameState) error {
	if err := checkCurrent(state, e.Player); err != nil {
		return err
	}
	state.Rolls++
	return nil
}
func (e *DiceRolledEvent) Message() string {
	switch e.Outcome {
	case rules.Keep:
		return fmt.Sprintf("Player %d rolled %d: bust, back to %d.", e.Player+1, e.Sum, e.Total)
	case rules.Zero:
		return fmt.Sprintf("Player %d rolled %d: bust, score wiped.", e.Player+1, e.Sum)
	}
	return fmt.Sprintf("Player %d rolled %d: round %d, total %d.", e.Player+1, e.Sum, e.Round, e.Total)
}

// TurnEndedEvent banks the player's new total and advances the rotation.
type TurnEndedEvent struct {
	Player int        `json:"player"`
	Status TurnStatus `json:"status"`
	Score  int        `json:"score"`
}

func (e *TurnEndedEvent) Type() EventType { return EventTurnEnded }
func (e *TurnEndedEvent) Apply(state *GameState) error {
	if err := checkCurrent(state, e.Player); err != nil {
		return err
	}
	if e.Score < 0 {
		return fmt.Errorf("score cannot be negative: %d", e.Score)
	}
	state.Scores[e.Player] = e.Score
	state.TurnIndex++
	if e.Score > state.HighScore {
		state.HighScore = e.Score
		state.Leader = e.Player
	}
	if state.Phase == PhaseFinal && state.FinalTurnsLeft > 0 {
		state.FinalTurnsLeft--
	}
	return nil
}
func (e *TurnEndedEvent) Message() string {
	return fmt.Sprintf("Player %d finished with %d.", e.Player+1, e.Score)
}

// ThresholdReachedEvent switches the game into its final round.
type ThresholdReachedEvent struct {
	Player int   `json:"player"`
	Score  int   `json:"score"`
	Scores []int `json:"scores"`
}

func (e *ThresholdReachedEvent) Type() EventType { return EventThresholdReached }
func (e *ThresholdReachedEvent) Apply(state *GameState) error {
	if state.Phase != PhaseRace {
		return fmt.Errorf("threshold already reached")
	}
	if e.Player < 0 || e.Player >= state.Players() {
		return fmt.Errorf("unknown player %d", e.Player+1)
	}
	state.Phase = PhaseFinal
	state.Leader = e.Player
	state.HighScore = e.Score
	state.FinalTurnsLeft = state.Players() - 1
	return nil
}
func (e *ThresholdReachedEvent) Message() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Player %d banked %d. Final round:", e.Player+1, e.Score))
	for i, s := range e.Scores {
		sb.WriteString(fmt.Sprintf("\n├─ Player %d: %d", i+1, s))
	}
	return sb.String()
}

// GameWonEvent closes the game.
type GameWonEvent struct {
	Player int `json:"player"`
	Score  int `json:"score"`
}

func (e *GameWonEvent) Type() EventType { return EventGameWon }
func (e *GameWonEvent) Apply(state *GameState) error {
	if state.Phase != PhaseFinal {
		return fmt.Errorf("cannot declare a winner in phase %s", state.Phase)
	}
	state.Phase = PhaseOver
	state.Winner = e.Player
	return nil
}
func (e *GameWonEvent) Message() string {
	return fmt.Sprintf("Player %d wins with %d!", e.Player+1, e.Score)
}
