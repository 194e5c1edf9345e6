package game

import "golang.org/x/exp/slices"

const (
	TimePenalty = 1   // Paid by Pacman on every move, including Stop
	FoodReward  = 10  // Eating one food pellet
	WinReward   = 500 // Eating the last food pellet
	GhostReward = 200 // Eating a scared ghost
	LosePenalty = 500 // Being caught by an active ghost
	ScaredTime  = 40  // Ghost moves a capsule keeps ghosts scared for
)

func pacmanActions(gs *GameState) []Action {
	actions := make([]Action, 0, len(Directions)+1)
	for _, d := range Directions {
		if !gs.layout.IsWall(gs.pacman.Move(d)) {
			actions = append(actions, d)
		}
	}
	return append(actions, Stop)
}

// Ghosts cannot stop and only turn back when nothing else is possible.
func ghostActions(gs *GameState, agent int) []Action {
	g := gs.ghosts[agent-1]
	actions := make([]Action, 0, len(Directions))
	for _, d := range Directions {
		if !gs.layout.IsWall(g.position.Move(d)) {
			actions = append(actions, d)
		}
	}
	reverse := g.direction.Reverse()
	if len(actions) > 1 && reverse != Stop {
		if i := slices.Index(actions, reverse); i >= 0 {
			actions = slices.Delete(actions, i, i+1)
		}
	}
	return actions
}

func (gs *GameState) movePacman(action Action) {
	gs.pacman = gs.pacman.Move(action)
	gs.score -= TimePenalty

	idx := gs.pacman.Y*gs.layout.Width + gs.pacman.X
	if gs.food[idx] {
		gs.food = slices.Clone(gs.food)
		gs.food[idx] = false
		gs.foodLeft--
		gs.score += FoodReward
		if gs.foodLeft == 0 && !gs.lose {
			gs.score += WinReward
			gs.win = true
		}
	}

	if i := slices.Index(gs.capsules, gs.pacman); i >= 0 {
		gs.capsules = slices.Delete(slices.Clone(gs.capsules), i, i+1)
		for j := range gs.ghosts {
			gs.ghosts[j].scared = ScaredTime
		}
	}

	for j := range gs.ghosts {
		gs.checkCollision(j)
	}
}

func (gs *GameState) moveGhost(agent int, action Action) {
	g := &gs.ghosts[agent-1]
	g.position = g.position.Move(action)
	g.direction = action
	if g.scared > 0 {
		g.scared--
	}
	gs.checkCollision(agent - 1)
}

func (gs *GameState) checkCollision(ghost int) {
	g := &gs.ghosts[ghost]
	if g.position != gs.pacman {
		return
	}
	if g.scared > 0 {
		gs.score += GhostReward
		g.position = g.start
		g.direction = Stop
		g.scared = 0
		return
	}
	if !gs.win {
		gs.score -= LosePenalty
		gs.lose = true
	}
}
