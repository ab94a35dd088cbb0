package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCELRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("Sum Comparison", func(t *testing.T) {
		out, err := registry.Eval("sum == 7", RollContext{Dice: []int{3, 4}, Sum: 7})
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Dice Indexing", func(t *testing.T) {
		out, err := registry.Eval("dice[0] == dice[1]", RollContext{Dice: []int{5, 5}, Sum: 10})
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Round And Banked", func(t *testing.T) {
		out, err := registry.Eval("round + banked", RollContext{Round: 12, Banked: 30})
		assert.NoError(t, err)
		assert.Equal(t, int64(42), out) // CEL returns int64 for IntType
	})

	t.Run("Unknown Variable", func(t *testing.T) {
		_, err := registry.Eval("pips > 3", RollContext{})
		assert.Error(t, err)
	})
}

func TestDefaultBookClassify(t *testing.T) {
	book := Default()

	for sum := 2; sum <= 12; sum++ {
		got, err := book.Classify(RollContext{Sum: sum})
		require.NoError(t, err)
		switch sum {
		case 7:
			assert.Equal(t, Keep, got, "sum %d", sum)
		case 2:
			assert.Equal(t, Zero, got, "sum %d", sum)
		default:
			assert.Equal(t, Continue, got, "sum %d", sum)
		}
	}
}

func TestBookFirstMatchWins(t *testing.T) {
	book, err := NewBook([]Rule{
		{When: "sum >= 10", Outcome: Zero},
		{When: "sum == 12", Outcome: Keep},
	})
	require.NoError(t, err)

	got, err := book.Classify(RollContext{Sum: 12})
	require.NoError(t, err)
	assert.Equal(t, Zero, got)
	assert.Len(t, book.Rules(), 2)
}

func TestNewBookRejectsBadRules(t *testing.T) {
	_, err := NewBook([]Rule{{When: "sum == 7", Outcome: "explode"}})
	assert.ErrorIs(t, err, ErrUnknownOutcome)

	_, err = NewBook([]Rule{{When: "sum +", Outcome: Keep}})
	assert.Error(t, err)

	_, err = NewBook([]Rule{{When: "sum + 1", Outcome: Keep}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to a bool")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.yaml")
	content := `rules:
  - when: "sum == 7"
    outcome: keep
  - when: "dice[0] == 1 && dice[1] == 1"
    outcome: zero
  - when: "sum == 12 && banked == 0"
    outcome: zero
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	book, err := LoadFile(path)
	require.NoError(t, err)

	got, err := book.Classify(RollContext{Dice: []int{6, 6}, Sum: 12, Banked: 0})
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	got, err = book.Classify(RollContext{Dice: []int{6, 6}, Sum: 12, Banked: 20})
	require.NoError(t, err)
	assert.Equal(t, Continue, got)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("rules: []\n"), 0644))
	_, err = LoadFile(empty)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "declares no rules")
}
