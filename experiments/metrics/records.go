package metrics

import (
	"time"

	"pacsearch/searcher"

	"github.com/google/uuid"
)

type AgentConfig struct {
	ID         int
	Strategy   string
	Depth      int
	Evaluation string // Empty selects the strategy default
}

type GameRecord struct {
	ID        uuid.UUID
	Agent     int // AgentConfig.ID
	Won       bool
	Score     float64
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Truncated bool // Stopped by the move limit
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	Step int
	searcher.MoveMetrics
}
