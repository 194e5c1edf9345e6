package searcher

import (
	"sync/atomic"
	"time"

	"pacsearch/game"
)

type MoveMetrics struct {
	StartTime   time.Time
	Duration    time.Duration
	Depth       int
	Nodes       int64 // Expanded nodes, including the root
	Evaluations int64 // Leaf evaluations
	Prunes      int64 // Siblings skipped by alpha-beta cutoffs
	Action      game.Action
	Value       float64
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddEvaluation()
	AddPrunes(n int)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime   time.Time
	depth       int
	nodes       atomic.Int64
	evaluations atomic.Int64
	prunes      atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.prunes.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) AddPrunes(n int) {
	m.prunes.Add(int64(n))
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Depth:       m.depth,
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Prunes:      m.prunes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)             {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddEvaluation()        {}
func (m *noMetricsCollector) AddPrunes(int)         {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
