package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, stdin string, faces []int, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	prev := newRoller
	newRoller = func() engine.Roller { return engine.NewSequenceRoller(faces...) }
	t.Cleanup(func() { newRoller = prev })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScorechartExitsBeforePlaying(t *testing.T) {
	out, err := run(t, "", nil, "-s", "-p", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Your roll | Your end-of-round total")
	assert.NotContains(t, out, "Player")
}

func TestPlayQuietSinglePlayer(t *testing.T) {
	out, err := run(t, "y\nn\n", []int{6, 6}, "-q", "-p", "1", "--target", "10")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Player 1:",
		"12|12|12",
		"12",
		"Player 1 has a score of 12",
		"12 from 1",
		"Player 1 wins!",
	}, "\n")+"\n", out)
}

func TestPlayPromptsForPlayerCount(t *testing.T) {
	out, err := run(t, "abc\n1\nn\ny\nn\n", []int{6, 6}, "--target", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "How many players do you want? ")
	assert.Contains(t, out, "Error: Invalid player count. Please try again: ")
	assert.Contains(t, out, "Player 1 wins!")
}

func TestRecordAndReplay(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "y\nn\n", []int{5, 5}, "-q", "-p", "1", "--target", "10", "--record", "solo", "--games-dir", dir)
	require.NoError(t, err)

	out, err := run(t, "", nil, "replay", "--games-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "solo\n", out)

	out, err = run(t, "", nil, "replay", "solo", "--events", "--games-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Game started with 1 players, playing to 10.")
	assert.Contains(t, out, "- Player 1: 10")
	assert.Contains(t, out, "Player 1 wins!")

	_, err = run(t, "", nil, "replay", "missing", "--games-dir", dir)
	assert.Error(t, err)
}

func TestBadRulesFile(t *testing.T) {
	_, err := run(t, "", nil, "-p", "2", "--rules", "does-not-exist.yaml")
	assert.ErrorContains(t, err, "could not open rules file")
}
