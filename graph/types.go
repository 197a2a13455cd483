// Package graph compiles a sparse, ID-based connection list produced by a
// genome into compact, index-based runtime graphs: a cyclic form for
// general networks, and a depth-layered acyclic form for feed-forward
// networks. The runtime graphs are immutable once built and safe to share
// across goroutines; everything that mutates state during activation lives
// in the engine package instead.
package graph

// WeightedConnection is an ordered triple (source node ID, target node ID,
// weight) as produced by a genome. Self-loops and parallel edges are
// permitted; node IDs are sparse and non-contiguous in this form.
type WeightedConnection struct {
	Source int
	Target int
	Weight float64
}

// Cyclic is the compacted, index-based runtime form of a (possibly cyclic)
// directed graph. Node IDs have been renumbered to a dense [0,TotalNodeCount)
// range: inputs occupy [0,InputCount), outputs occupy
// [InputCount,InputCount+OutputCount), and hidden nodes occupy
// [InputCount+OutputCount,TotalNodeCount).
//
// Connections are stored as parallel arrays sorted ascending by
// (SourceID, TargetID) so that activation accesses are cache-friendly.
type Cyclic struct {
	InputCount     int
	OutputCount    int
	TotalNodeCount int

	SourceID []int
	TargetID []int
	Weight   []float64
}

// HiddenCount returns the number of hidden nodes in the graph.
func (g *Cyclic) HiddenCount() int {
	return g.TotalNodeCount - g.InputCount - g.OutputCount
}

// ConnectionCount returns the number of connections in the graph.
func (g *Cyclic) ConnectionCount() int {
	return len(g.SourceID)
}
