package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPlayerCount is returned for a player count that is not a positive integer.
var ErrInvalidPlayerCount = errors.New("invalid player count")

// ParseDecision reads a roll decision. Only "y" and "n" are accepted,
// in either case and with surrounding whitespace ignored.
//
// Examples:
//
//	"y"   → roll=true,  ok=true
//	" N " → roll=false, ok=true
//	"yes" → ok=false
func ParseDecision(input string) (roll bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return true, true
	case "n":
		return false, true
	}
	return false, false
}

// ParsePlayerCount reads a positive integer player count.
func ParsePlayerCount(input string) (int, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPlayerCount, input)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, n)
	}
	return n, nil
}
