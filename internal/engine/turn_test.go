package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

func classify(t *testing.T, sum int) rules.Outcome {
	t.Helper()
	out, err := rules.Default().Classify(rules.RollContext{Sum: sum})
	require.NoError(t, err)
	return out
}

func TestTurnSevenRestoresBanked(t *testing.T) {
	for _, banked := range []int{0, 15, 99, 140} {
		turn := NewTurn(0, banked)
		require.NoError(t, turn.Resolve(10, classify(t, 10)))
		require.NoError(t, turn.Resolve(7, classify(t, 7)))

		assert.True(t, turn.Done())
		assert.Equal(t, TurnBustedKeep, turn.Status)
		assert.Equal(t, banked, turn.Score())
	}
}

func TestTurnTwoWipesScore(t *testing.T) {
	for _, banked := range []int{0, 15, 99, 140} {
		turn := NewTurn(1, banked)
		require.NoError(t, turn.Resolve(6, classify(t, 6)))
		require.NoError(t, turn.Resolve(2, classify(t, 2)))

		assert.True(t, turn.Done())
		assert.Equal(t, TurnBustedZero, turn.Status)
		assert.Equal(t, 0, turn.Score())
	}
}

func TestTurnNonBustSumsAccumulate(t *testing.T) {
	turn := NewTurn(0, 20)
	prev := turn.Round
	for _, sum := range []int{3, 4, 5, 6, 8, 9, 10, 11, 12} {
		require.NoError(t, turn.Resolve(sum, classify(t, sum)))
		assert.False(t, turn.Done(), "sum %d should not end the turn", sum)
		assert.Greater(t, turn.Round, prev)
		prev = turn.Round
	}
	assert.Equal(t, 68, turn.Round)
	assert.Equal(t, 88, turn.Score())
	assert.Equal(t, 9, turn.Rolls)
}

func TestTurnBankKeepsRound(t *testing.T) {
	turn := NewTurn(0, 30)
	require.NoError(t, turn.Resolve(9, rules.Continue))
	require.NoError(t, turn.Bank())

	assert.Equal(t, TurnBanked, turn.Status)
	assert.False(t, turn.Status.Busted())
	assert.Equal(t, 39, turn.Score())
}

func TestTurnOverRejectsActions(t *testing.T) {
	turn := NewTurn(0, 0)
	require.NoError(t, turn.Bank())

	assert.ErrorIs(t, turn.Bank(), ErrTurnOver)
	assert.ErrorIs(t, turn.Resolve(5, rules.Continue), ErrTurnOver)
}

func TestTurnUnknownOutcome(t *testing.T) {
	turn := NewTurn(0, 0)
	err := turn.Resolve(5, rules.Outcome("double"))
	assert.ErrorIs(t, err, rules.ErrUnknownOutcome)
}
