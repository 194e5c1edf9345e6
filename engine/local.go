package engine

import (
	"time"

	"pacsearch/game"
	"pacsearch/meta"
	"pacsearch/searcher"
	"pacsearch/searcher/agent"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Local plays a whole game in process: Pacman first, then each ghost in index order.
type Local struct {
	Pacman   agent.Agent
	Ghosts   []GhostMover // Ghosts[i] moves agent i+1
	MaxMoves int          // Pacman moves before giving up; 0 selects meta.MAX_MOVES
}

type metricsReporter interface {
	LastMetrics() searcher.MoveMetrics
}

// Run executes the entire game loop until the game ends. A game cut short by
// MaxMoves still returns its partial result alongside ErrMaxMoves.
func (e *Local) Run(state game.State) (Result, error) {
	res := Result{ID: uuid.New(), Start: time.Now()}
	if len(e.Ghosts) != state.NumAgents()-1 {
		return res, errors.Wrapf(ErrGhostCount, "%d movers for %d ghosts", len(e.Ghosts), state.NumAgents()-1)
	}
	maxMoves := e.MaxMoves
	if maxMoves <= 0 {
		maxMoves = meta.MAX_MOVES
	}
	reporter, reports := e.Pacman.(metricsReporter)

	log.Info().Str("game", res.ID.String()).Int("ghosts", len(e.Ghosts)).Msg("Game starting")

	finish := func(state game.State) {
		res.End = time.Now()
		res.Won, res.Lost = state.IsWin(), state.IsLose()
		res.Score = state.Score()
	}

	for !game.IsTerminal(state) {
		if res.Moves >= maxMoves {
			finish(state)
			log.Warn().Str("game", res.ID.String()).Float64("score", res.Score).Msgf("Stopped after %d moves", res.Moves)
			return res, errors.Wrapf(ErrMaxMoves, "after %d moves", res.Moves)
		}

		for agentIndex := 0; agentIndex < state.NumAgents() && !game.IsTerminal(state); agentIndex++ {
			if len(state.LegalActions(agentIndex)) == 0 {
				continue
			}

			var action game.Action
			var err error
			if agentIndex == game.Pacman {
				action, err = e.Pacman.ChooseAction(state)
				if err == nil && reports {
					res.Metrics = append(res.Metrics, reporter.LastMetrics())
				}
			} else {
				action, err = e.Ghosts[agentIndex-1].Move(state, agentIndex)
			}
			if err != nil {
				finish(state)
				return res, errors.Wrapf(err, "agent %d on move %d", agentIndex, res.Moves+1)
			}

			next, err := state.Successor(agentIndex, action)
			if err != nil {
				finish(state)
				return res, errors.Wrapf(err, "agent %d on move %d", agentIndex, res.Moves+1)
			}
			state = next
			res.History = append(res.History, Update{Agent: agentIndex, Action: action, Score: state.Score()})
		}
		res.Moves++
	}

	finish(state)
	log.Info().
		Str("game", res.ID.String()).
		Bool("won", res.Won).
		Float64("score", res.Score).
		Int("moves", res.Moves).
		Dur("duration", res.Duration()).
		Msg("Game over")
	return res, nil
}
