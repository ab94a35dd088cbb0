package display

import (
	"fmt"
	"io"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

// Terse writes pipe-delimited codes, see PrintScorechart.
type Terse struct {
	w io.Writer
}

// NewTerse returns a terse formatter writing to w.
func NewTerse(w io.Writer) *Terse {
	return &Terse{w: w}
}

func (t *Terse) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(t.w, format+"\n", args...)
	return err
}

// Record writes the code for evt, if it has one.
func (t *Terse) Record(evt engine.Event) error {
	switch e := evt.(type) {
	case *engine.TurnStartedEvent:
		if e.Final {
			if err := t.printf("%d max", e.HighScore); err != nil {
				return err
			}
		}
		return t.printf("Player %d:", e.Player+1)
	case *engine.DiceRolledEvent:
		switch e.Outcome {
		case rules.Keep:
			return t.printf("%d|%d", e.Sum, e.Total)
		case rules.Zero:
			return t.printf("%d|0", e.Sum)
		default:
			return t.printf("%d|%d|%d", e.Sum, e.Round, e.Total)
		}
	case *engine.TurnEndedEvent:
		if e.Status == engine.TurnBanked {
			return t.printf("%d", e.Score)
		}
	case *engine.ThresholdReachedEvent:
		if err := printScores(t.w, e.Scores); err != nil {
			return err
		}
		return t.printf("%d from %d", e.Score, e.Player+1)
	case *engine.GameWonEvent:
		return t.printf("Player %d wins!", e.Player+1)
	}
	return nil
}

// RollPrompt is empty; terse players answer on a bare line.
func (t *Terse) RollPrompt(int) string {
	return ""
}

func (t *Terse) InvalidInput() string {
	return "Unable to read input."
}
