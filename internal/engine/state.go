package engine

// DefaultTarget is the banked score that ends the race phase.
const DefaultTarget = 100

// Phase marks where the game is relative to the target score.
type Phase string

const (
	// PhaseRace runs until some player banks the target.
	PhaseRace Phase = "race"
	// PhaseFinal gives every other player one last turn.
	PhaseFinal Phase = "final"
	// PhaseOver means a winner has been declared.
	PhaseOver Phase = "over"
)

// GameState is the actively calculated projection of a game.
type GameState struct {
	Scores         []int `json:"scores"`
	Target         int   `json:"target"`
	TurnIndex      int   `json:"turn_index"`
	HighScore      int   `json:"high_score"`
	Leader         int   `json:"leader"`
	Phase          Phase `json:"phase"`
	FinalTurnsLeft int   `json:"final_turns_left"`
	Winner         int   `json:"winner"`
	Rolls          int   `json:"rolls"`
}

// NewGameState creates an empty clean slate
func NewGameState() *GameState {
	return &GameState{
		Target: DefaultTarget,
		Phase:  PhaseRace,
		Leader: -1,
		Winner: -1,
	}
}

// Players returns the number of seats at the table.
func (s *GameState) Players() int {
	return len(s.Scores)
}

// CurrentPlayer is the index of the player whose turn it is.
func (s *GameState) CurrentPlayer() int {
	if len(s.Scores) == 0 {
		return 0
	}
	return s.TurnIndex % len(s.Scores)
}

// LastPlayer is the index of the player who completed the previous turn.
func (s *GameState) LastPlayer() int {
	if len(s.Scores) == 0 || s.TurnIndex == 0 {
		return -1
	}
	return (s.TurnIndex - 1) % len(s.Scores)
}

// ThresholdReached reports whether any banked score has met the target.
func (s *GameState) ThresholdReached() bool {
	return s.HighScore >= s.Target
}
