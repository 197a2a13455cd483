package engine

import "github.com/nn-phenome/phenomecore/activation"
import "github.com/nn-phenome/phenomecore/graph"

// CyclicEngine drives a (possibly cyclic) runtime graph by repeated
// fixed-iteration relaxation, the generalization of the teacher's
// ActivateSteps loop over FastModularNetwork's neuronSignals /
// neuronSignalsBeingProcessed arrays to an arbitrary activation count
// instead of a convergence-or-maxSteps loop.
type CyclicEngine struct {
	g               *graph.Cyclic
	activationFn    activation.Function
	activationCount int
	bounds          OutputBounds

	pre  []float64
	post []float64

	disposed bool
}

// NewCyclicEngine constructs an engine over g. activationCount is the fixed
// number of relaxation iterations Activate performs; bounds configures
// whether OutputVector clamps its reads.
func NewCyclicEngine(g *graph.Cyclic, fn activation.Function, activationCount int, bounds OutputBounds) *CyclicEngine {
	return &CyclicEngine{
		g:               g,
		activationFn:    fn,
		activationCount: activationCount,
		bounds:          bounds,
		pre:             defaultArrayPool.get(g.TotalNodeCount),
		post:            defaultArrayPool.get(g.TotalNodeCount),
	}
}

func (e *CyclicEngine) InputCount() int  { return e.g.InputCount }
func (e *CyclicEngine) OutputCount() int { return e.g.OutputCount }

func (e *CyclicEngine) InputVector() InputView {
	return contiguousInputView{buf: e.post, start: 0, end: e.g.InputCount}
}

func (e *CyclicEngine) OutputVector() OutputView {
	return contiguousOutputView{
		buf: e.post, start: e.g.InputCount, end: e.g.InputCount + e.g.OutputCount,
		bounded: e.bounds.Enabled, lo: e.bounds.Lo, hi: e.bounds.Hi,
	}
}

// Activate performs exactly activationCount relaxation iterations: for each
// connection, accumulate post[source]*weight into pre[target]; activate
// pre[inputCount:] into post[inputCount:]; zero pre[inputCount:].
func (e *CyclicEngine) Activate() {
	inputCount := e.g.InputCount
	total := e.g.TotalNodeCount

	for iter := 0; iter < e.activationCount; iter++ {
		for i, src := range e.g.SourceID {
			tgt := e.g.TargetID[i]
			e.pre[tgt] += e.post[src] * e.g.Weight[i]
		}
		e.activationFn(e.pre, inputCount, total)
		copy(e.post[inputCount:total], e.pre[inputCount:total])
		for i := inputCount; i < total; i++ {
			e.pre[i] = 0
		}
	}
}

// ResetState zeroes pre and post over [inputCount, totalNodeCount). Inputs
// are left untouched; the caller owns them.
func (e *CyclicEngine) ResetState() {
	inputCount := e.g.InputCount
	total := e.g.TotalNodeCount
	for i := inputCount; i < total; i++ {
		e.pre[i] = 0
		e.post[i] = 0
	}
}

// Dispose returns the engine's activation arrays to the pool. Calling any
// other method after Dispose has undefined behavior.
func (e *CyclicEngine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	defaultArrayPool.put(e.pre)
	defaultArrayPool.put(e.post)
	e.pre, e.post = nil, nil
}
