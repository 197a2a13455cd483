package graph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// directedView adapts a Cyclic into gonum's graph.Directed so the gonum
// topological-sort algorithms can be reused instead of reimplemented,
// mirroring the teacher's FastNetworkSolver/NNode graph.Directed adapters
// built over fast_network.go's parallel arrays.
type directedView struct {
	g *Cyclic
}

func (v directedView) simple() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := 0; i < v.g.TotalNodeCount; i++ {
		dg.AddNode(simple.Node(i))
	}
	for i, src := range v.g.SourceID {
		tgt := v.g.TargetID[i]
		if src == tgt {
			continue // gonum's simple graph rejects self-loops; cycle detection doesn't need them
		}
		if dg.HasEdgeFromTo(int64(src), int64(tgt)) {
			continue
		}
		dg.SetEdge(dg.NewEdge(simple.Node(src), simple.Node(tgt)))
	}
	return dg
}

// VerifyAcyclic returns ErrCycleDetected if g contains a cycle (including a
// self-loop, which topo.Sort on the collapsed simple graph would otherwise
// miss). It is a defensive check a caller may run before trusting
// AnalyzeDepth's "caller asserts acyclic" precondition; it is not required
// on the activation hot path.
func VerifyAcyclic(g *Cyclic) error {
	for i, src := range g.SourceID {
		if src == g.TargetID[i] {
			return ErrCycleDetected
		}
	}
	view := directedView{g: g}
	if _, err := topo.Sort(view.simple()); err != nil {
		return ErrCycleDetected
	}
	return nil
}

var _ graph.Directed = (*simple.DirectedGraph)(nil)
