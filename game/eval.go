package game

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Weights tunes the terms of the better evaluation function. Every weight is
// applied with the sign that makes a higher total better for Pacman.
type Weights struct {
	Score         float64 // Raw game score
	FoodDistance  float64 // Reward for being close to the nearest food
	FoodCount     float64 // Penalty per remaining food pellet
	CapsuleCount  float64 // Penalty per remaining capsule
	GhostDistance float64 // Penalty for being close to an active ghost
	ScaredGhost   float64 // Reward for being close to a ghost that can still be caught
}

var DefaultWeights = Weights{
	Score:         1,
	FoodDistance:  10,
	FoodCount:     4,
	CapsuleCount:  20,
	GhostDistance: 20,
	ScaredGhost:   100,
}

// StopPenalty discourages single-ply agents from standing still.
const StopPenalty = 5

// ScoreEvaluation returns the engine-tracked score unmodified.
func ScoreEvaluation(s State) float64 {
	return s.Score()
}

// NewBetterEvaluation combines score, food, capsule and ghost terms into a weighted sum.
// Terminal states and states that expose no observation evaluate to their score.
func NewBetterEvaluation(w Weights) Evaluate {
	return func(s State) float64 {
		if IsTerminal(s) {
			return s.Score()
		}
		obs, ok := s.(Observation)
		if !ok {
			return s.Score()
		}

		pacman := obs.PacmanPosition()
		food := obs.Food()
		value := w.Score * obs.Score()

		if nearest, ok := nearestDistance(pacman, food); ok {
			value += w.FoodDistance / float64(nearest+1)
		}
		value -= w.FoodCount * float64(len(food))
		value -= w.CapsuleCount * float64(len(obs.Capsules()))

		for _, g := range obs.Ghosts() {
			d := pacman.Manhattan(g.Position)
			if g.IsScared() {
				// Only chase ghosts that stay scared long enough to be reached
				if d < g.ScaredTimer {
					value += w.ScaredGhost / float64(d+1)
				}
				continue
			}
			value -= w.GhostDistance / float64(d+1)
		}
		return value
	}
}

var BetterEvaluation = NewBetterEvaluation(DefaultWeights)

func nearestDistance(from Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	nearest := math.MaxInt
	for _, t := range targets {
		if d := from.Manhattan(t); d < nearest {
			nearest = d
		}
	}
	return nearest, true
}

// ScoreActionEvaluation scores an action by the score of the state it leads to.
func ScoreActionEvaluation(s State, a Action) (float64, error) {
	next, err := s.Successor(Pacman, a)
	if err != nil {
		return 0, err
	}
	return next.Score(), nil
}

// ReflexEvaluation scores an action by the better evaluation of the state it
// leads to, with a small penalty for stopping.
func ReflexEvaluation(s State, a Action) (float64, error) {
	next, err := s.Successor(Pacman, a)
	if err != nil {
		return 0, err
	}
	value := BetterEvaluation(next)
	if a == Stop {
		value -= StopPenalty
	}
	return value, nil
}

const (
	ScoreEvaluationName       = "scoreEvaluationFunction"
	BetterEvaluationName      = "betterEvaluationFunction"
	ScoreActionEvaluationName = "scoreActionEvaluation"
	ReflexEvaluationName      = "reflexEvaluationFunction"
)

var evaluations = map[string]Evaluate{
	ScoreEvaluationName:  ScoreEvaluation,
	BetterEvaluationName: BetterEvaluation,
	"better":             BetterEvaluation,
}

var actionEvaluations = map[string]ActionEvaluate{
	ScoreActionEvaluationName: ScoreActionEvaluation,
	ReflexEvaluationName:      ReflexEvaluation,
}

// LookupEvaluation resolves a state evaluation function by its registered name.
func LookupEvaluation(name string) (Evaluate, error) {
	if fn, ok := evaluations[name]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownEvaluation, "%q", name)
}

// LookupActionEvaluation resolves an action evaluation function by its registered name.
func LookupActionEvaluation(name string) (ActionEvaluate, error) {
	if fn, ok := actionEvaluations[name]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownEvaluation, "%q", name)
}

// EvaluationNames lists every registered state evaluation name in sorted order.
func EvaluationNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
