package game

import "github.com/pkg/errors"

var (
	ErrIllegalAction     = errors.New("illegal action")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidAgent      = errors.New("invalid agent index")
	ErrUnknownEvaluation = errors.New("unknown evaluation function")
)

func illegalAction(agent int, action Action) error {
	return errors.Wrapf(ErrIllegalAction, "agent %d cannot play %s", agent, action)
}
