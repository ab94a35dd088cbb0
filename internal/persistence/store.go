package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tim-parisi/100-dice-simulation/internal/engine"
)

// EventWrapper facilitates serialization of polymorphic events
type EventWrapper struct {
	Type  engine.EventType `json:"type"`
	Event json.RawMessage  `json:"data"`
}

// Store handles append-only storing of a game record.
type Store struct {
	file *os.File
}

// NewStore opens or creates the file at path for appending lines
func NewStore(path string) (*Store, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Store{file: file}, nil
}

// Path returns the location of the record on disk.
func (s *Store) Path() string {
	return s.file.Name()
}

// Record appends evt, which lets a Store ride along with the engine.
func (s *Store) Record(evt engine.Event) error {
	return s.Append(evt)
}

// Append marshals evt to one jsonl line.
func (s *Store) Append(evt engine.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	wrapperData, err := json.Marshal(EventWrapper{Type: evt.Type(), Event: data})
	if err != nil {
		return err
	}

	if _, err := s.file.Write(append(wrapperData, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

func newEvent(t engine.EventType) (engine.Event, error) {
	switch t {
	case engine.EventGameStarted:
		return &engine.GameStartedEvent{}, nil
	case engine.EventTurnStarted:
		return &engine.TurnStartedEvent{}, nil
	case engine.EventDiceRolled:
		return &engine.DiceRolledEvent{}, nil
	case engine.EventTurnEnded:
		return &engine.TurnEndedEvent{}, nil
	case engine.EventThresholdReached:
		return &engine.ThresholdReachedEvent{}, nil
	case engine.EventGameWon:
		return &engine.GameWonEvent{}, nil
	}
	return nil, fmt.Errorf("unknown event type in log: %s", t)
}

// Load replays all jsonl lines and unpacks them to an Event slice.
func (s *Store) Load() ([]engine.Event, error) {
	var events []engine.Event

	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(s.file)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var wrapper EventWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("line %d: failed to decode wrapper: %w", line, err)
		}

		evt, err := newEvent(wrapper.Type)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := json.Unmarshal(wrapper.Event, evt); err != nil {
			return nil, fmt.Errorf("line %d: failed to parse event data into specific type: %w", line, err)
		}

		events = append(events, evt)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Close handles safe shutdown.
func (s *Store) Close() error {
	return s.file.Close()
}
