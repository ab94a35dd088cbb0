// Package display renders game events for the terminal.
//
// Two strategies exist: Verbose writes full sentences and is the default;
// Terse writes pipe-delimited score codes meant to be read alongside the
// score chart.
package display

import (
	"fmt"
	"io"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
)

// Formatter renders engine events and the prompts that go with them.
type Formatter interface {
	engine.Recorder
	RollPrompt(player int) string
	InvalidInput() string
}

// New selects the formatter for the requested mode.
func New(quiet bool, w io.Writer) Formatter {
	if quiet {
		return NewTerse(w)
	}
	return NewVerbose(w)
}

const scorechart = `
The scorechart will usually have this format:
    Your roll | Your total for this round | Your total score if you end your turn

If you rolled a 7 or a 2, the scorechart will have this format:
    Your roll | Your end-of-round total
`

// PrintScorechart writes the legend for terse output.
func PrintScorechart(w io.Writer) error {
	_, err := io.WriteString(w, scorechart)
	return err
}

func printScores(w io.Writer, scores []int) error {
	for i, s := range scores {
		if _, err := fmt.Fprintf(w, "Player %d has a score of %d\n", i+1, s); err != nil {
			return err
		}
	}
	return nil
}
