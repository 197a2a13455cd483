package engine

import (
	"github.com/nn-phenome/phenomecore/activation"
	"github.com/nn-phenome/phenomecore/graph"
	"gonum.org/v1/gonum/floats"
)

// vectorWidth is the chunk size the vectorized engine strip-mines the
// connection loop into. Go has no portable SIMD intrinsics, so the
// multiply step is expressed as a bulk gonum/floats slice operation (the
// portable-vectorization idiom the rest of this module uses) instead of
// hand-rolled assembly; the gather step is a per-lane indexed load, and the
// scatter-add step stays scalar per spec, since colliding target indices
// within a chunk make a vector store unsafe.
const vectorWidth = 8

// VectorizedAcyclicEngine is result-equivalent to AcyclicEngine modulo
// floating-point summation order: it gathers vectorWidth source values at a
// time, multiplies them against the matching weight chunk in one bulk
// operation, then scatters the products into their (possibly colliding)
// targets with a scalar loop.
type VectorizedAcyclicEngine struct {
	g            *graph.DAG
	activationFn activation.Function
	bounds       OutputBounds

	activations []float64
	gatherBuf   []float64
	productBuf  []float64

	disposed bool
}

// NewVectorizedAcyclicEngine constructs a vectorized acyclic engine over g.
func NewVectorizedAcyclicEngine(g *graph.DAG, fn activation.Function, bounds OutputBounds) *VectorizedAcyclicEngine {
	return &VectorizedAcyclicEngine{
		g:            g,
		activationFn: fn,
		bounds:       bounds,
		activations:  defaultArrayPool.get(g.TotalNodeCount),
		gatherBuf:    make([]float64, vectorWidth),
		productBuf:   make([]float64, vectorWidth),
	}
}

func (e *VectorizedAcyclicEngine) InputCount() int  { return e.g.InputCount }
func (e *VectorizedAcyclicEngine) OutputCount() int { return e.g.OutputCount }

func (e *VectorizedAcyclicEngine) InputVector() InputView {
	return contiguousInputView{buf: e.activations, start: 0, end: e.g.InputCount}
}

func (e *VectorizedAcyclicEngine) OutputVector() OutputView {
	return scatterOutputView{
		buf: e.activations, indices: e.g.OutputNodeIdx,
		bounded: e.bounds.Enabled, lo: e.bounds.Lo, hi: e.bounds.Hi,
	}
}

func (e *VectorizedAcyclicEngine) Activate() {
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

		e.accumulateRange(prevConnEnd, connEnd)

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

func (e *VectorizedAcyclicEngine) accumulateRange(start, end int) {
	g := e.g
	c := start
	for ; c+vectorWidth <= end; c += vectorWidth {
		for lane := 0; lane < vectorWidth; lane++ {
			e.gatherBuf[lane] = e.activations[g.SourceID[c+lane]]
		}
		copy(e.productBuf, e.gatherBuf)
		floats.MulTo(e.productBuf, e.productBuf, g.Weight[c:c+vectorWidth])
		for lane := 0; lane < vectorWidth; lane++ {
			e.activations[g.TargetID[c+lane]] += e.productBuf[lane]
		}
	}
	for ; c < end; c++ {
		e.activations[g.TargetID[c]] += e.activations[g.SourceID[c]] * g.Weight[c]
	}
}

func (e *VectorizedAcyclicEngine) ResetState() {}

func (e *VectorizedAcyclicEngine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	defaultArrayPool.put(e.activations)
	e.activations = nil
}
