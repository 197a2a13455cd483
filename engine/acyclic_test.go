package engine

import (
	"github.com/nn-phenome/phenomecore/activation"
	"github.com/nn-phenome/phenomecore/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// xorLikeConnections builds a small 2-input/1-output/1-hidden network with
// both a direct input->output edge and an input->hidden->output path, so
// the output's depth is determined by the longer path.
func xorLikeConnections() []graph.WeightedConnection {
	return []graph.WeightedConnection{
		{Source: 0, Target: 3, Weight: 0.6},
		{Source: 1, Target: 3, Weight: -0.8},
		{Source: 3, Target: 2, Weight: 1.2},
		{Source: 0, Target: 2, Weight: -0.3},
		{Source: 1, Target: 2, Weight: 0.9},
	}
}

func TestAcyclicEngine_DirectConnectionOnlyGraph(t *testing.T) {
	// graphDepth == 1: exercises the degenerate loop-bound case where the
	// only layer transition is straight from inputs to outputs.
	conns := []graph.WeightedConnection{{Source: 0, Target: 1, Weight: 2.0}}
	g, err := graph.BuildCyclic(conns, 1, 1)
	require.NoError(t, err)
	depth, err := graph.AnalyzeDepth(g)
	require.NoError(t, err)
	dag, err := graph.BuildAcyclic(g, depth)
	require.NoError(t, err)

	fn, _ := activation.NewFactory().Get(activation.Linear)
	e := NewAcyclicEngine(dag, fn, OutputBounds{})
	defer e.Dispose()

	e.InputVector().Set(0, 3.0)
	e.Activate()
	assert.InDelta(t, 6.0, e.OutputVector().Get(0), 1e-12)
}

func TestAcyclicEngine_CyclicEquivalence(t *testing.T) {
	conns := xorLikeConnections()
	g, err := graph.BuildCyclic(conns, 2, 1)
	require.NoError(t, err)
	depth, err := graph.AnalyzeDepth(g)
	require.NoError(t, err)
	dag, err := graph.BuildAcyclic(g, depth)
	require.NoError(t, err)

	fn, _ := activation.NewFactory().Get(activation.SigmoidSteepened)

	cyclicEngine := NewCyclicEngine(g, fn, depth.GraphDepth, OutputBounds{})
	defer cyclicEngine.Dispose()
	acyclicEngine := NewAcyclicEngine(dag, fn, OutputBounds{})
	defer acyclicEngine.Dispose()

	inputs := []float64{0.0, 1.0}
	for i, v := range inputs {
		cyclicEngine.InputVector().Set(i, v)
		acyclicEngine.InputVector().Set(i, v)
	}
	cyclicEngine.Activate()
	acyclicEngine.Activate()

	assert.InDelta(t, cyclicEngine.OutputVector().Get(0), acyclicEngine.OutputVector().Get(0), 1e-10)
}

func TestAcyclicEngine_VectorizedEquivalence(t *testing.T) {
	conns := xorLikeConnections()
	g, err := graph.BuildCyclic(conns, 2, 1)
	require.NoError(t, err)
	depth, err := graph.AnalyzeDepth(g)
	require.NoError(t, err)
	dag, err := graph.BuildAcyclic(g, depth)
	require.NoError(t, err)

	fn, _ := activation.NewFactory().Get(activation.SigmoidSteepened)

	scalar := NewAcyclicEngine(dag, fn, OutputBounds{})
	defer scalar.Dispose()
	vectorized := NewVectorizedAcyclicEngine(dag, fn, OutputBounds{})
	defer vectorized.Dispose()

	inputs := []float64{1.0, 0.0}
	for i, v := range inputs {
		scalar.InputVector().Set(i, v)
		vectorized.InputVector().Set(i, v)
	}
	scalar.Activate()
	vectorized.Activate()

	assert.InDelta(t, scalar.OutputVector().Get(0), vectorized.OutputVector().Get(0), 1e-9)
}

func TestAcyclicEngine_IdempotentAcrossCalls(t *testing.T) {
	conns := xorLikeConnections()
	g, err := graph.BuildCyclic(conns, 2, 1)
	require.NoError(t, err)
	depth, err := graph.AnalyzeDepth(g)
	require.NoError(t, err)
	dag, err := graph.BuildAcyclic(g, depth)
	require.NoError(t, err)

	fn, _ := activation.NewFactory().Get(activation.Tanh)
	e := NewAcyclicEngine(dag, fn, OutputBounds{})
	defer e.Dispose()

	e.InputVector().Set(0, 0.2)
	e.InputVector().Set(1, 0.8)
	e.Activate()
	first := e.OutputVector().Get(0)
	e.Activate()
	second := e.OutputVector().Get(0)
	assert.Equal(t, first, second)
}
