package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type StateHash uint64

type ghostState struct {
	position  Position
	direction Action
	scared    int
	start     Position
}

// GameState is the dynamic part of a Pacman game. It is never modified after
// construction; every transition returns a new copy.
type GameState struct {
	layout   *Layout  // Static maze, shared between all copies
	pacman   Position // Current Pacman position
	food     []bool   // Remaining food, indexed by y*Width + x
	foodLeft int
	capsules []Position
	ghosts   []ghostState
	score    float64
	win      bool
	lose     bool
}

// NewGameState returns the initial state for a layout.
func NewGameState(l *Layout) *GameState {
	if l == nil {
		panic("layout cannot be nil")
	}
	gs := &GameState{
		layout:   l,
		pacman:   l.Pacman,
		food:     make([]bool, l.Width*l.Height),
		capsules: slices.Clone(l.Capsules),
		ghosts:   make([]ghostState, len(l.Ghosts)),
	}
	for _, f := range l.Food {
		gs.food[f.Y*l.Width+f.X] = true
		gs.foodLeft++
	}
	for i, g := range l.Ghosts {
		gs.ghosts[i] = ghostState{position: g, direction: Stop, start: g}
	}
	return gs
}

func (gs *GameState) copy() *GameState {
	next := *gs
	next.ghosts = slices.Clone(gs.ghosts)
	return &next
}

func (gs *GameState) IsWin() bool    { return gs.win }
func (gs *GameState) IsLose() bool   { return gs.lose }
func (gs *GameState) Score() float64 { return gs.score }
func (gs *GameState) NumAgents() int { return len(gs.ghosts) + 1 }

// Layout returns the static maze the game is played on.
func (gs *GameState) Layout() *Layout { return gs.layout }

func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose || agent < 0 || agent >= gs.NumAgents() {
		return nil
	}
	if agent == Pacman {
		return pacmanActions(gs)
	}
	return ghostActions(gs, agent)
}

func (gs *GameState) Successor(agent int, action Action) (State, error) {
	if gs.win || gs.lose {
		return nil, errors.Wrapf(ErrGameOver, "no successor for agent %d", agent)
	}
	if agent < 0 || agent >= gs.NumAgents() {
		return nil, errors.Wrapf(ErrInvalidAgent, "agent %d of %d", agent, gs.NumAgents())
	}
	if !slices.Contains(gs.LegalActions(agent), action) {
		return nil, illegalAction(agent, action)
	}

	next := gs.copy()
	if agent == Pacman {
		next.movePacman(action)
	} else {
		next.moveGhost(agent, action)
	}
	return next, nil
}

func (gs *GameState) PacmanPosition() Position { return gs.pacman }

func (gs *GameState) Food() []Position {
	food := make([]Position, 0, gs.foodLeft)
	for i, ok := range gs.food {
		if ok {
			food = append(food, Position{X: i % gs.layout.Width, Y: i / gs.layout.Width})
		}
	}
	return food
}

// FoodCount returns the number of food pellets left.
func (gs *GameState) FoodCount() int { return gs.foodLeft }

// HasFood reports whether p still holds a food pellet.
func (gs *GameState) HasFood(p Position) bool {
	if gs.layout.IsWall(p) {
		return false
	}
	return gs.food[p.Y*gs.layout.Width+p.X]
}

func (gs *GameState) Capsules() []Position { return slices.Clone(gs.capsules) }

func (gs *GameState) Ghosts() []Ghost {
	ghosts := make([]Ghost, len(gs.ghosts))
	for i, g := range gs.ghosts {
		ghosts[i] = Ghost{Position: g.position, Direction: g.direction, ScaredTimer: g.scared}
	}
	return ghosts
}

// Hash identifies the dynamic part of the state.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.pacman.X))
	binary.Write(hasher, binary.LittleEndian, int64(gs.pacman.Y))
	for _, g := range gs.ghosts {
		binary.Write(hasher, binary.LittleEndian, int64(g.position.X))
		binary.Write(hasher, binary.LittleEndian, int64(g.position.Y))
		binary.Write(hasher, binary.LittleEndian, int64(g.scared))
	}
	for _, ok := range gs.food {
		binary.Write(hasher, binary.LittleEndian, ok)
	}
	for _, c := range gs.capsules {
		binary.Write(hasher, binary.LittleEndian, int64(c.X))
		binary.Write(hasher, binary.LittleEndian, int64(c.Y))
	}
	binary.Write(hasher, binary.LittleEndian, math.Float64bits(gs.score))

	return StateHash(hasher.Sum64())
}

// String renders the board with the current agents, food and capsules.
func (gs *GameState) String() string {
	l := gs.layout
	grid := make([][]byte, l.Height)
	for y := range grid {
		grid[y] = make([]byte, l.Width)
		for x := range grid[y] {
			p := Position{X: x, Y: y}
			switch {
			case l.IsWall(p):
				grid[y][x] = '%'
			case gs.HasFood(p):
				grid[y][x] = '.'
			default:
				grid[y][x] = ' '
			}
		}
	}
	for _, c := range gs.capsules {
		grid[c.Y][c.X] = 'o'
	}
	for _, g := range gs.ghosts {
		if g.scared > 0 {
			grid[g.position.Y][g.position.X] = 'S'
		} else {
			grid[g.position.Y][g.position.X] = 'G'
		}
	}
	grid[gs.pacman.Y][gs.pacman.X] = 'P'

	var sb strings.Builder
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
