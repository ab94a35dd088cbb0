package engine

import (
	"errors"
	"fmt"

	"github.com/tim-parisi/100-dice-simulation/internal/log"
	"github.com/tim-parisi/100-dice-simulation/internal/rules"
)

// ErrGameOver is returned when a finished game is asked to continue.
var ErrGameOver = errors.New("game is already over")

// Decider answers whether a player wants to throw the dice again.
type Decider interface {
	WantsRoll(player int) (bool, error)
}

// Classifier decides what a roll does to the turn.
type Classifier interface {
	Classify(roll rules.RollContext) (rules.Outcome, error)
}

// Recorder receives every event after it has been applied to the state.
type Recorder interface {
	Record(evt Event) error
}

// Config wires a game together. Zero values select the defaults.
type Config struct {
	Players   int
	Target    int
	Roller    Roller
	Rules     Classifier
	Decider   Decider
	Recorders []Recorder
}

// Game drives the race and final phases over an explicit GameState.
type Game struct {
	players   int
	target    int
	roller    Roller
	rules     Classifier
	decider   Decider
	recorders []Recorder
	state     *GameState
}

// NewGame validates the config and fills in defaults.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Players <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, cfg.Players)
	}
	if cfg.Decider == nil {
		return nil, fmt.Errorf("a decider is required")
	}
	if cfg.Target <= 0 {
		cfg.Target = DefaultTarget
	}
	if cfg.Roller == nil {
		cfg.Roller = CryptoRoller{}
	}
	if cfg.Rules == nil {
		cfg.Rules = rules.Default()
	}
	return &Game{
		players:   cfg.Players,
		target:    cfg.Target,
		roller:    cfg.Roller,
		rules:     cfg.Rules,
		decider:   cfg.Decider,
		recorders: cfg.Recorders,
		state:     NewGameState(),
	}, nil
}

// State returns the live game state.
func (g *Game) State() *GameState {
	return g.state
}

func (g *Game) emit(evt Event) error {
	if err := evt.Apply(g.state); err != nil {
		return fmt.Errorf("failed to apply %s: %w", evt.Type(), err)
	}
	for _, r := range g.recorders {
		if err := r.Record(evt); err != nil {
			return fmt.Errorf("failed to record %s: %w", evt.Type(), err)
		}
	}
	return nil
}

// Play runs the whole game and returns the final state.
func (g *Game) Play() (*GameState, error) {
	if g.state.Phase == PhaseOver {
		return nil, ErrGameOver
	}
	if err := g.emit(&GameStartedEvent{Players: g.players, Target: g.target}); err != nil {
		return nil, err
	}
	log.Info("game started", "players", g.players, "target", g.target)

	for !g.state.ThresholdReached() {
		if _, err := g.PlayTurn(); err != nil {
			return nil, err
		}
	}

	setter := g.state.LastPlayer()
	scores := append([]int(nil), g.state.Scores...)
	if err := g.emit(&ThresholdReachedEvent{Player: setter, Score: scores[setter], Scores: scores}); err != nil {
		return nil, err
	}
	log.Info("threshold reached", "player", setter+1, "score", scores[setter], "turn", g.state.TurnIndex)

	for g.state.FinalTurnsLeft > 0 {
		if _, err := g.PlayTurn(); err != nil {
			return nil, err
		}
	}

	if err := g.emit(&GameWonEvent{Player: g.state.Leader, Score: g.state.HighScore}); err != nil {
		return nil, err
	}
	log.Info("game won", "player", g.state.Leader+1, "score", g.state.HighScore, "turns", g.state.TurnIndex)
	return g.state, nil
}

// PlayTurn runs the current player's turn to completion.
func (g *Game) PlayTurn() (*Turn, error) {
	if g.state.Phase == PhaseOver {
		return nil, ErrGameOver
	}
	if g.state.Players() == 0 {
		return nil, fmt.Errorf("game has not started")
	}

	p := g.state.CurrentPlayer()
	turn := NewTurn(p, g.state.Scores[p])
	if err := g.emit(&TurnStartedEvent{
		Player:    p,
		Banked:    turn.Banked,
		HighScore: g.state.HighScore,
		Final:     g.state.ThresholdReached(),
	}); err != nil {
		return nil, err
	}

	for !turn.Done() {
		again, err := g.decider.WantsRoll(p)
		if err != nil {
			return nil, err
		}
		if !again {
			if err := turn.Bank(); err != nil {
				return nil, err
			}
			break
		}

		roll, err := g.roller.Roll()
		if err != nil {
			return nil, fmt.Errorf("failed to roll dice: %w", err)
		}
		outcome, err := g.rules.Classify(rules.RollContext{
			Dice:   roll.Dice[:],
			Sum:    roll.Sum(),
			Round:  turn.Round,
			Banked: turn.Banked,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to classify roll %s: %w", roll, err)
		}
		if err := turn.Resolve(roll.Sum(), outcome); err != nil {
			return nil, err
		}
		log.Debug("dice rolled", "player", p+1, "roll", roll.String(), "outcome", outcome, "round", turn.Round)

		if err := g.emit(&DiceRolledEvent{
			Player:  p,
			Dice:    roll.Dice,
			Sum:     roll.Sum(),
			Outcome: outcome,
			Round:   turn.Round,
			Total:   turn.Score(),
		}); err != nil {
			return nil, err
		}
	}

	if err := g.emit(&TurnEndedEvent{Player: p, Status: turn.Status, Score: turn.Score()}); err != nil {
		return nil, err
	}
	log.Debug("turn ended", "player", p+1, "status", turn.Status, "score", turn.Score(), "turn", g.state.TurnIndex)
	return turn, nil
}
