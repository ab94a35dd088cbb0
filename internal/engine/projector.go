package engine

import "fmt"

// Projector rebuilds a GameState by folding a recorded event sequence.
type Projector struct {
	// Observe, when set, sees every event after it has been applied.
	Observe func(evt Event, state *GameState)
}

// NewProjector creates a standard projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Build applies events in order. The first event must start a game.
func (p *Projector) Build(events []Event) (*GameState, error) {
	state := NewGameState()
	if len(events) == 0 {
		return state, nil
	}
	if events[0].Type() != EventGameStarted {
		return nil, fmt.Errorf("record must begin with %s, got %s", EventGameStarted, events[0].Type())
	}

	for i, evt := range events {
		if err := evt.Apply(state); err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, evt.Type(), err)
		}
		if p.Observe != nil {
			p.Observe(evt, state)
		}
	}

	return state, nil
}
