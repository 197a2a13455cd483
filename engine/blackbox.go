// Package engine turns an immutable runtime graph (from the graph package)
// plus an activation function into a live, stateful activation engine: the
// cyclic fixed-iteration engine and the acyclic single-pass (scalar and
// vectorized) engine. Engines are the only place in this module that holds
// mutable state; the Solver.ActivateSteps loop in the teacher's
// FastModularNetwork is the closest analogue, generalized into an explicit
// construct/activate/reset/dispose lifecycle so engines can be pooled.
package engine

// BlackBox is the facade a phenome evaluator drives: write signals into
// InputVector, call Activate, read OutputVector. It hides whether the
// underlying engine is cyclic or acyclic, and whether outputs are
// contiguous or scattered, mirroring the teacher's network.Solver
// interface generalized to a view-based contract instead of
// LoadSensors/ReadOutputs slice copies.
type BlackBox interface {
	InputCount() int
	OutputCount() int

	// InputVector returns a mutable view of length InputCount(). Writes are
	// visible to the next Activate call.
	InputVector() InputView

	// OutputVector returns a read-only view of length OutputCount(),
	// populated by the most recent Activate call.
	OutputVector() OutputView

	Activate()
	ResetState()
	Dispose()
}

// InputView is a mutable view over an engine's input slots.
type InputView interface {
	Len() int
	Set(i int, v float64)
	Get(i int) float64
}

// OutputView is a read-only view over an engine's output slots. Concrete
// implementations may be a contiguous slice view (cyclic engine) or a
// scatter view indexed by a permutation (acyclic engine), and may clamp
// reads to a bounded range.
type OutputView interface {
	Len() int
	Get(i int) float64
}

// contiguousInputView is an InputView over a contiguous subrange of a
// backing array, used by both engines since inputs are always at [0,inputCount).
type contiguousInputView struct {
	buf        []float64
	start, end int
}

func (v contiguousInputView) Len() int { return v.end - v.start }

func (v contiguousInputView) Set(i int, value float64) {
	v.buf[v.start+i] = value
}

func (v contiguousInputView) Get(i int) float64 {
	return v.buf[v.start+i]
}

// contiguousOutputView is an OutputView over a contiguous subrange,
// optionally clamped, as used by the cyclic engine.
type contiguousOutputView struct {
	buf        []float64
	start, end int
	bounded    bool
	lo, hi     float64
}

func (v contiguousOutputView) Len() int { return v.end - v.start }

func (v contiguousOutputView) Get(i int) float64 {
	x := v.buf[v.start+i]
	if !v.bounded {
		return x
	}
	if x < v.lo {
		return v.lo
	}
	if x > v.hi {
		return v.hi
	}
	return x
}

// scatterOutputView is an OutputView over indices given by a permutation
// into a backing array, as used by the acyclic engine (outputs are not
// contiguous once reordered by depth).
type scatterOutputView struct {
	buf     []float64
	indices []int
	bounded bool
	lo, hi  float64
}

func (v scatterOutputView) Len() int { return len(v.indices) }

func (v scatterOutputView) Get(i int) float64 {
	x := v.buf[v.indices[i]]
	if !v.bounded {
		return x
	}
	if x < v.lo {
		return v.lo
	}
	if x > v.hi {
		return v.hi
	}
	return x
}

// OutputBounds configures optional output clamping. The canonical ranges
// are [-1,1] for bipolar activations and [0,1] for unipolar ones; which one
// applies depends on the activation function paired with the engine, so
// this is a property of the view, not of the engine itself.
type OutputBounds struct {
	Enabled bool
	Lo, Hi  float64
}
