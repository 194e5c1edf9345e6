package agent

import (
	"time"

	"pacsearch/game"
	"pacsearch/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ReflexAgent looks a single Pacman move ahead and picks uniformly at random
// among the best scoring actions.
type ReflexAgent struct {
	evaluate game.ActionEvaluate
	rng      *rand.Rand
}

func NewReflexAgent(cfg Config) (*ReflexAgent, error) {
	name := cfg.EvaluationFn
	if name == "" {
		name = meta.DefaultActionEvaluation
	}
	evaluate, err := game.LookupActionEvaluation(name)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &ReflexAgent{evaluate: evaluate, rng: rand.New(rand.NewSource(seed))}, nil
}

func (a *ReflexAgent) ChooseAction(state game.State) (game.Action, error) {
	actions := state.LegalActions(game.Pacman)
	if len(actions) == 0 {
		return game.Stop, nil
	}

	var best []game.Action
	bestScore := 0.0
	for _, action := range actions {
		score, err := a.evaluate(state, action)
		if err != nil {
			return "", err
		}
		switch {
		case len(best) == 0 || score > bestScore:
			best, bestScore = []game.Action{action}, score
		case score == bestScore:
			best = append(best, action)
		}
	}

	chosen := best[a.rng.Intn(len(best))]
	log.Debug().Str("action", string(chosen)).Float64("score", bestScore).Int("ties", len(best)).Msg("reflex decision")
	return chosen, nil
}
