package searcher

import (
	"fmt"
	"math"
	"strconv"

	"pacsearch/game"

	"github.com/awalterschulze/gographviz"
)

type traceNode struct {
	parent int // -1 for the root
	agent  int
	depth  int
	action game.Action // Action that led here, empty for the root
	value  float64
}

// Tracer records the tree explored by a single search. A nil *Tracer records nothing.
// It is not safe for concurrent searches.
type Tracer struct {
	nodes []traceNode
	stack []int
}

func NewTracer() *Tracer {
	return &Tracer{}
}

func (t *Tracer) reset() {
	if t == nil {
		return
	}
	t.nodes = t.nodes[:0]
	t.stack = t.stack[:0]
}

func (t *Tracer) enter(agent, depth int, action game.Action) {
	if t == nil {
		return
	}
	parent := -1
	if len(t.stack) > 0 {
		parent = t.stack[len(t.stack)-1]
	}
	t.nodes = append(t.nodes, traceNode{parent: parent, agent: agent, depth: depth, action: action})
	t.stack = append(t.stack, len(t.nodes)-1)
}

func (t *Tracer) leave(value float64) {
	if t == nil || len(t.stack) == 0 {
		return
	}
	top := t.stack[len(t.stack)-1]
	t.nodes[top].value = value
	t.stack = t.stack[:len(t.stack)-1]
}

// Len returns the number of recorded nodes, leaves included.
func (t *Tracer) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Children returns the actions and values recorded directly below the root, in search order.
func (t *Tracer) Children() (actions []game.Action, values []float64) {
	if t == nil {
		return nil, nil
	}
	for _, n := range t.nodes {
		if n.parent == 0 {
			actions = append(actions, n.action)
			values = append(values, n.value)
		}
	}
	return actions, values
}

// ToDot renders the recorded tree in Graphviz DOT format. Pacman nodes are boxes,
// ghost nodes are ellipses.
func (t *Tracer) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("search"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if t == nil {
		return g.String(), nil
	}

	for i, n := range t.nodes {
		shape := "ellipse"
		if n.agent == game.Pacman {
			shape = "box"
		}
		attrs := map[string]string{
			"shape": shape,
			"label": strconv.Quote(fmt.Sprintf("agent %d depth %d\n%s", n.agent, n.depth, formatValue(n.value))),
		}
		if err := g.AddNode("search", nodeName(i), attrs); err != nil {
			return "", err
		}
		if n.parent < 0 {
			continue
		}
		edge := map[string]string{"label": strconv.Quote(string(n.action))}
		if err := g.AddEdge(nodeName(n.parent), nodeName(i), true, edge); err != nil {
			return "", err
		}
	}
	return g.String(), nil
}

func nodeName(i int) string {
	return fmt.Sprintf("n%d", i)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
