package engine

import (
	"time"

	"pacsearch/game"
	"pacsearch/searcher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	ErrMaxMoves   = errors.New("move limit reached")
	ErrGhostCount = errors.New("ghost movers do not match the layout")
)

type Engine interface {
	// Run plays from state until the game is won, lost or the move limit is reached
	Run(state game.State) (Result, error)
}

type Result struct {
	ID      uuid.UUID
	Won     bool
	Lost    bool
	Score   float64
	Moves   int // Pacman moves
	Start   time.Time
	End     time.Time
	Metrics []searcher.MoveMetrics // One entry per Pacman decision when the agent reports metrics
	History []Update
}

func (r Result) Duration() time.Duration { return r.End.Sub(r.Start) }

type Update struct {
	Agent  int
	Action game.Action
	Score  float64 // After the action
}

// GhostMover decides the action of one ghost.
type GhostMover interface {
	Move(state game.State, agent int) (game.Action, error)
}

// GhostFunc adapts a plain function to GhostMover.
type GhostFunc func(state game.State, agent int) (game.Action, error)

func (f GhostFunc) Move(state game.State, agent int) (game.Action, error) {
	return f(state, agent)
}

// RandomGhost picks uniformly among the ghost's legal actions. It is not safe
// for concurrent use.
type RandomGhost struct {
	rng *rand.Rand
}

func NewRandomGhost(seed uint64) *RandomGhost {
	return &RandomGhost{rng: rand.New(rand.NewSource(seed))}
}

func (g *RandomGhost) Move(state game.State, agent int) (game.Action, error) {
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return "", errors.Wrapf(game.ErrIllegalAction, "ghost %d has no legal actions", agent)
	}
	return actions[g.rng.Intn(len(actions))], nil
}

// RandomGhosts returns n independent random ghosts seeded from seed.
func RandomGhosts(n int, seed uint64) []GhostMover {
	ghosts := make([]GhostMover, n)
	for i := range ghosts {
		ghosts[i] = NewRandomGhost(seed + uint64(i))
	}
	return ghosts
}
