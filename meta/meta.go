// meta/meta.go
package meta

// DefaultDepth is the number of full agent cycles searched when none is configured.
const DefaultDepth = 2

// DefaultEvaluation is the evaluation function used by search agents when none is configured.
const DefaultEvaluation = "scoreEvaluationFunction"

// DefaultActionEvaluation is the evaluation function used by reflex agents when none is configured.
const DefaultActionEvaluation = "scoreActionEvaluation"

// DefaultLayout is the fixture layout played by the CLI.
const DefaultLayout = "smallClassic"

// MAX_MOVES caps the number of Pacman moves in one game.
const MAX_MOVES = 500

// GAMES is the number of games played per agent configuration in an experiment.
const GAMES = 10
