package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

// Verbose writes every event as a full sentence.
type Verbose struct {
	w       io.Writer
	warn    lipgloss.Style
	bust    lipgloss.Style
	winner  lipgloss.Style
	setting lipgloss.Style
}

// NewVerbose builds styles against w so colour is only emitted to terminals.
func NewVerbose(w io.Writer) *Verbose {
	r := lipgloss.NewRenderer(w)
	return &Verbose{
		w:       w,
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94")),
		bust:    r.NewStyle().Foreground(lipgloss.Color("#999999")),
		winner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")),
		setting: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
	}
}

func (v *Verbose) line(style lipgloss.Style, format string, args ...any) error {
	_, err := fmt.Fprintln(v.w, style.Render(fmt.Sprintf(format, args...)))
	return err
}

func (v *Verbose) plain(format string, args ...any) error {
	_, err := fmt.Fprintf(v.w, format+"\n", args...)
	return err
}

// Record writes the sentence for evt, if it has one.
func (v *Verbose) Record(evt engine.Event) error {
	switch e := evt.(type) {
	case *engine.TurnStartedEvent:
		if e.Final {
			return v.line(v.warn, "WARNING: A score of %d has been banked!", e.HighScore)
		}
	case *engine.DiceRolledEvent:
		switch e.Outcome {
		case rules.Keep:
			return v.line(v.bust, "You rolled a %d! You finished with %d End of Turn", e.Sum, e.Total)
		case rules.Zero:
			return v.line(v.bust, "Oh no! You rolled a %d! You finished with 0 End of Turn", e.Sum)
		default:
			return v.plain("You rolled a %d! Score: %d | %d", e.Sum, e.Round, e.Total)
		}
	case *engine.TurnEndedEvent:
		if e.Status == engine.TurnBanked {
			return v.plain("You finished with %d", e.Score)
		}
	case *engine.ThresholdReachedEvent:
		if err := printScores(v.w, e.Scores); err != nil {
			return err
		}
		return v.line(v.setting, "The score has been set at %d by player %d! 1 turn remaining for all other players:", e.Score, e.Player+1)
	case *engine.GameWonEvent:
		return v.line(v.winner, "Player %d wins!", e.Player+1)
	}
	return nil
}

// RollPrompt asks the player by number.
func (v *Verbose) RollPrompt(player int) string {
	return fmt.Sprintf("Player %d, would you like to roll? (Y/N) ", player+1)
}

// InvalidInput is shown when a decision cannot be parsed.
func (v *Verbose) InvalidInput() string {
	return "Unable to read input."
}
