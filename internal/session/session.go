package session

import (
	"fmt"
	"io"

	"github.com/tim-parisi/100-dice-simulation/internal/display"
	"github.com/tim-parisi/100-dice-simulation/internal/engine"
)

// Options configures one console game. Zero values fall back to the
// engine defaults; Players <= 0 means the players are asked.
type Options struct {
	Players  int
	Target   int
	Quiet    bool
	Rules    engine.Classifier
	Roller   engine.Roller
	Recorder engine.Recorder
	In       io.Reader
	Out      io.Writer
}

// Session manages the cohesive loop of prompting players, running the
// engine, rendering events and persisting them.
type Session struct {
	opts     Options
	format   display.Formatter
	prompter *Prompter
}

// NewSession binds the formatter and prompter to the session's console.
func NewSession(opts Options) *Session {
	format := display.New(opts.Quiet, opts.Out)
	return &Session{
		opts:     opts,
		format:   format,
		prompter: NewPrompter(opts.In, opts.Out, format),
	}
}

// Run plays one game to completion and returns its final state.
func (s *Session) Run() (*engine.GameState, error) {
	players := s.opts.Players
	if players <= 0 {
		n, err := s.prompter.PlayerCount()
		if err != nil {
			return nil, fmt.Errorf("failed to read player count: %w", err)
		}
		players = n
	}

	recorders := []engine.Recorder{s.format}
	if s.opts.Recorder != nil {
		recorders = append(recorders, s.opts.Recorder)
	}

	game, err := engine.NewGame(engine.Config{
		Players:   players,
		Target:    s.opts.Target,
		Roller:    s.opts.Roller,
		Rules:     s.opts.Rules,
		Decider:   s.prompter,
		Recorders: recorders,
	})
	if err != nil {
		return nil, err
	}
	return game.Play()
}
