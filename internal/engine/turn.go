package engine

import (
	"errors"
	"fmt"

	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

// ErrTurnOver is returned when a finished turn is asked to act again.
var ErrTurnOver = errors.New("turn is already over")

// TurnStatus is the state of a player's turn.
type TurnStatus string

const (
	TurnRolling    TurnStatus = "rolling"
	TurnBanked     TurnStatus = "banked"
	TurnBustedKeep TurnStatus = "busted_keep"
	TurnBustedZero TurnStatus = "busted_zero"
)

// Busted reports whether the turn ended on a bust roll.
func (s TurnStatus) Busted() bool {
	return s == TurnBustedKeep || s == TurnBustedZero
}

// Turn is the state machine for one player's turn. Banked is the score the
// player held when the turn began; Round accumulates unbanked points.
type Turn struct {
	Player int
	Banked int
	Round  int
	Rolls  int
	Status TurnStatus
}

// NewTurn starts a turn in the rolling state.
func NewTurn(player, banked int) *Turn {
	return &Turn{Player: player, Banked: banked, Status: TurnRolling}
}

// Done reports whether the turn reached a terminal state.
func (t *Turn) Done() bool {
	return t.Status != TurnRolling
}

// Bank ends the turn keeping the round points.
func (t *Turn) Bank() error {
	if t.Done() {
		return ErrTurnOver
	}
	t.Status = TurnBanked
	return nil
}

// Resolve applies a classified roll to the turn.
func (t *Turn) Resolve(sum int, outcome rules.Outcome) error {
	if t.Done() {
		return ErrTurnOver
	}
	t.Rolls++
	switch outcome {
	case rules.Continue:
		t.Round += sum
	case rules.Keep:
		t.Status = TurnBustedKeep
	case rules.Zero:
		t.Status = TurnBustedZero
	default:
		return fmt.Errorf("%w: %q", rules.ErrUnknownOutcome, outcome)
	}
	return nil
}

// Score is the player's total if the turn ended now, or the final total
// once it has ended.
func (t *Turn) Score() int {
	switch t.Status {
	case TurnBustedKeep:
		return t.Banked
	case TurnBustedZero:
		return 0
	}
	return t.Banked + t.Round
}
