package agent

import (
	"fmt"
	"strconv"
	"strings"

	"pacsearch/game"
	"pacsearch/meta"
	"pacsearch/searcher"

	"github.com/pkg/errors"
)

// Config holds everything needed to build an agent. The zero value is valid and
// selects the defaults.
type Config struct {
	EvaluationFn string        // Registered evaluation name; empty selects the strategy default
	Depth        int           // Full agent cycles; 0 selects meta.DefaultDepth
	Weights      *game.Weights // Overrides the better evaluation weights when set
	Seed         uint64        // Reflex tie-break seed; 0 seeds from the clock
	Metrics      bool
	Tracer       *searcher.Tracer
}

func (c Config) depth() int {
	if c.Depth == 0 {
		return meta.DefaultDepth
	}
	return c.Depth
}

// ParseDepth converts a depth given as a number or as decimal text.
func ParseDepth[D ~int | ~string](depth D) (int, error) {
	text := strings.TrimSpace(fmt.Sprint(depth))
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(searcher.ErrInvalidDepth, "parsing %q", text)
	}
	if n < 1 {
		return 0, errors.Wrapf(searcher.ErrInvalidDepth, "got %d", n)
	}
	return n, nil
}

// evaluation resolves the state evaluation named in c, applying custom weights
// to the better evaluation.
func (c Config) evaluation() (game.Evaluate, error) {
	name := c.EvaluationFn
	if name == "" {
		name = meta.DefaultEvaluation
	}
	evaluate, err := game.LookupEvaluation(name)
	if err != nil {
		return nil, err
	}
	if c.Weights != nil && (name == game.BetterEvaluationName || name == "better") {
		return game.NewBetterEvaluation(*c.Weights), nil
	}
	return evaluate, nil
}
