package stats

import (
	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
	"io"
)

// Trace accumulates one row of diagnostic values per activation step — the
// input/output vectors an evaluator drove a black box with — so a single
// evaluator run can be replayed or plotted offline. It has no dependency on
// any particular evaluator or evolutionary bookkeeping.
type Trace struct {
	inputWidth, outputWidth int
	inputs, outputs         []float64
	fitness                 []float64
	steps                   int
}

// NewTrace allocates a Trace for a run with the given input and output
// vector widths.
func NewTrace(inputWidth, outputWidth int) *Trace {
	return &Trace{inputWidth: inputWidth, outputWidth: outputWidth}
}

// Record appends one step's input vector, output vector, and scalar
// fitness contribution to the trace.
func (t *Trace) Record(input, output []float64, fitness float64) {
	t.inputs = append(t.inputs, input...)
	t.outputs = append(t.outputs, output...)
	t.fitness = append(t.fitness, fitness)
	t.steps++
}

// DumpTrace writes t to an NPZ archive, the way Experiment.WriteNPZ dumps
// per-trial statistics: three arrays, "inputs" (steps x inputWidth),
// "outputs" (steps x outputWidth), and "fitness" (steps x 1).
func DumpTrace(w io.Writer, t *Trace) error {
	inputs := mat.NewDense(t.steps, t.inputWidth, t.inputs)
	outputs := mat.NewDense(t.steps, t.outputWidth, t.outputs)
	fitness := mat.NewDense(t.steps, 1, t.fitness)

	out := npz.NewWriter(w)
	if err := out.Write("inputs", inputs); err != nil {
		return err
	}
	if err := out.Write("outputs", outputs); err != nil {
		return err
	}
	if err := out.Write("fitness", fitness); err != nil {
		return err
	}
	return out.Close()
}
