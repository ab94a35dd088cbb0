package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/tim-parisi/100-dice-simulation/internal/display"
	"github.com/tim-parisi/100-dice-simulation/internal/log"
)

// ErrInputClosed is returned when input ends before a valid answer arrives.
var ErrInputClosed = errors.New("input closed before a valid answer")

// Prompter asks players questions on a line-oriented console.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	format  display.Formatter
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, format display.Formatter) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		format:  format,
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return p.scanner.Text(), nil
}

// WantsRoll asks until the player answers y or n.
func (p *Prompter) WantsRoll(player int) (bool, error) {
	for {
		if _, err := io.WriteString(p.out, p.format.RollPrompt(player)); err != nil {
			return false, err
		}
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		if roll, ok := ParseDecision(line); ok {
			return roll, nil
		}
		log.Debug("unreadable decision", "player", player+1, "input", line)
		if _, err := fmt.Fprintln(p.out, p.format.InvalidInput()); err != nil {
			return false, err
		}
	}
}

// PlayerCount asks until a positive integer is entered.
func (p *Prompter) PlayerCount() (int, error) {
	prompt := "How many players do you want? "
	for {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return 0, err
		}
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := ParsePlayerCount(line)
		if err == nil {
			return n, nil
		}
		log.Debug("rejected player count", "error", err)
		prompt = "Error: Invalid player count. Please try again: "
	}
}
