package engine

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// DieSides is the number of faces on each of the two dice.
const DieSides = 6

// ErrDiceExhausted is returned by a SequenceRoller that has no faces left.
var ErrDiceExhausted = errors.New("scripted dice exhausted")

// Roll is the result of throwing both dice once.
type Roll struct {
	Dice [2]int
}

// Sum returns the combined pips of both dice.
func (r Roll) Sum() int {
	return r.Dice[0] + r.Dice[1]
}

func (r Roll) String() string {
	return fmt.Sprintf("%d+%d=%d", r.Dice[0], r.Dice[1], r.Sum())
}

// Roller throws the pair of dice.
type Roller interface {
	Roll() (Roll, error)
}

// CryptoRoller draws each die independently and uniformly from crypto/rand.
type CryptoRoller struct{}

// Roll throws two dice.
func (CryptoRoller) Roll() (Roll, error) {
	var r Roll
	for i := range r.Dice {
		v, err := safeRand(DieSides)
		if err != nil {
			return Roll{}, err
		}
		r.Dice[i] = v
	}
	return r, nil
}

// safeRand fetches a strongly uniform random integer in [1, max] via crypto/rand
func safeRand(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("cannot roll a die with %d sides", max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("failed to read randomness: %w", err)
	}
	return int(n.Int64()) + 1, nil
}

// SequenceRoller replays a fixed list of die faces, two per roll.
type SequenceRoller struct {
	faces []int
}

// NewSequenceRoller prepares deterministic faces for the next calls to Roll.
func NewSequenceRoller(faces ...int) *SequenceRoller {
	return &SequenceRoller{faces: faces}
}

// Roll consumes the next two faces.
func (s *SequenceRoller) Roll() (Roll, error) {
	if len(s.faces) < 2 {
		return Roll{}, ErrDiceExhausted
	}
	r := Roll{Dice: [2]int{s.faces[0], s.faces[1]}}
	s.faces = s.faces[2:]
	for _, d := range r.Dice {
		if d < 1 || d > DieSides {
			return Roll{}, fmt.Errorf("scripted face %d out of range", d)
		}
	}
	return r, nil
}

// Remaining reports how many faces are still queued.
func (s *SequenceRoller) Remaining() int {
	return len(s.faces)
}
