package engine

import "github.com/nn-phenome/phenomecore/activation"
import "github.com/nn-phenome/phenomecore/graph"

// AcyclicEngine performs single-pass layer-by-layer propagation over a DAG
// runtime graph: because nodes and connections are sorted by depth, each
// node is activated at most once per Activate call, unlike CyclicEngine's
// fixed-iteration relaxation.
type AcyclicEngine struct {
	g            *graph.DAG
	activationFn activation.Function
	bounds       OutputBounds

	activations []float64

	disposed bool
}

// NewAcyclicEngine constructs a scalar acyclic engine over g.
func NewAcyclicEngine(g *graph.DAG, fn activation.Function, bounds OutputBounds) *AcyclicEngine {
	return &AcyclicEngine{
		g:            g,
		activationFn: fn,
		bounds:       bounds,
		activations:  defaultArrayPool.get(g.TotalNodeCount),
	}
}

func (e *AcyclicEngine) InputCount() int  { return e.g.InputCount }
func (e *AcyclicEngine) OutputCount() int { return e.g.OutputCount }

func (e *AcyclicEngine) InputVector() InputView {
	return contiguousInputView{buf: e.activations, start: 0, end: e.g.InputCount}
}

func (e *AcyclicEngine) OutputVector() OutputView {
	return scatterOutputView{
		buf: e.activations, indices: e.g.OutputNodeIdx,
		bounded: e.bounds.Enabled, lo: e.bounds.Lo, hi: e.bounds.Hi,
	}
}

// Activate zeroes non-input activations, then walks depth boundaries
// 0..graphDepth inclusive, at each step accumulating the connections
// sourced at that depth into their targets before activating the nodes
// completed by that accumulation — one layer ahead, since a connection
// sourced at depth d always targets a node at depth > d. layerEnd only
// tracks boundaries [0,graphDepth) (the boundary past the deepest layer is
// trivially totalNodeCount/len(connections) and is not stored), so the
// final step falls back to those lengths directly.
func (e *AcyclicEngine) Activate() {
	g := e.g
	totalConns := len(g.SourceID)
	for i := g.InputCount; i < g.TotalNodeCount; i++ {
		e.activations[i] = 0
	}

	prevNodeEnd := g.InputCount
	prevConnEnd := 0
	for d := 0; d <= g.GraphDepth; d++ {
		var connEnd int
		if d < len(g.LayerEnd) {
			connEnd = g.LayerEnd[d].EndConnectionIdx
		} else {
			connEnd = totalConns
		}

		for c := prevConnEnd; c < connEnd; c++ {
			src, tgt := g.SourceID[c], g.TargetID[c]
			e.activations[tgt] += e.activations[src] * g.Weight[c]
		}

		var nodeEnd int
		if d+1 < len(g.LayerEnd) {
			nodeEnd = g.LayerEnd[d+1].EndNodeIdx
		} else {
			nodeEnd = g.TotalNodeCount
		}
		e.activationFn(e.activations, prevNodeEnd, nodeEnd)

		prevConnEnd = connEnd
		prevNodeEnd = nodeEnd
	}
}

// ResetState is a no-op: Activate unconditionally zeroes non-input slots at
// entry, so there is nothing additional to reset between evaluations.
func (e *AcyclicEngine) ResetState() {}

// Dispose returns the engine's activation array to the pool.
func (e *AcyclicEngine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	defaultArrayPool.put(e.activations)
	e.activations = nil
}
