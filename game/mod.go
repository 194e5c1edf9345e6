package game

// Pacman is always agent 0 and moves first in every round; ghosts are 1..N-1.
const Pacman = 0

// State is the capability the search consumes. Implementations must be immutable:
// Successor always returns a new state and leaves the receiver untouched.
type State interface {
	IsWin() bool
	IsLose() bool
	Score() float64
	// NumAgents is at least 1 (Pacman plus zero or more ghosts)
	NumAgents() int
	// LegalActions may return an empty slice, which is not an error
	LegalActions(agent int) []Action
	// Successor fails with ErrIllegalAction if action is not legal for agent
	Successor(agent int, action Action) (State, error)
}

// Observation exposes the world details used by evaluation functions only.
type Observation interface {
	State
	PacmanPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
}

// Ghost is a read-only snapshot of one ghost.
type Ghost struct {
	Position    Position
	Direction   Action
	ScaredTimer int
}

// IsScared reports whether Pacman can currently eat the ghost.
func (g Ghost) IsScared() bool {
	return g.ScaredTimer > 0
}

// Evaluate scores a state that is not searched any further. Higher is better for Pacman.
type Evaluate func(State) float64

// ActionEvaluate scores taking action from state, used by single-ply agents.
type ActionEvaluate func(State, Action) (float64, error)

// IsTerminal reports whether the game is over in state.
func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
