package rules

import "errors"

// Outcome is what a single roll does to the turn in progress.
type Outcome string

const (
	// Continue adds the roll to the round and lets the player decide again.
	Continue Outcome = "continue"
	// Keep ends the turn and restores the score banked before the turn.
	Keep Outcome = "keep"
	// Zero ends the turn and wipes the player's banked score.
	Zero Outcome = "zero"
)

// ErrUnknownOutcome is returned when a rule names an outcome we cannot apply.
var ErrUnknownOutcome = errors.New("unknown outcome")

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case Continue, Keep, Zero:
		return true
	}
	return false
}

// Rule maps a CEL condition over a roll to an outcome.
type Rule struct {
	When    string  `yaml:"when"`
	Outcome Outcome `yaml:"outcome"`
}

// RollContext is the data exposed to rule expressions.
type RollContext struct {
	Dice   []int
	Sum    int
	Round  int
	Banked int
}

func (c RollContext) activation() map[string]any {
	dice := make([]int64, len(c.Dice))
	for i, d := range c.Dice {
		dice[i] = int64(d)
	}
	return map[string]any{
		"sum":    int64(c.Sum),
		"dice":   dice,
		"round":  int64(c.Round),
		"banked": int64(c.Banked),
	}
}

// DefaultRules are the standard bust rules of the game.
var DefaultRules = []Rule{
	{When: "sum == 7", Outcome: Keep},
	{When: "sum == 2", Outcome: Zero},
}
