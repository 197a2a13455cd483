package phenome

import "github.com/nn-phenome/phenomecore/engine"

// constantInputView and constantOutputView are the minimal InputView/
// OutputView implementations needed to drive a constantOutputBox.
type constantInputView struct{ buf []float64 }

func (v constantInputView) Len() int             { return len(v.buf) }
func (v constantInputView) Set(i int, x float64) { v.buf[i] = x }
func (v constantInputView) Get(i int) float64    { return v.buf[i] }

type constantOutputView struct{ buf []float64 }

func (v constantOutputView) Len() int          { return len(v.buf) }
func (v constantOutputView) Get(i int) float64 { return v.buf[i] }

// constantOutputBox is a hand-rolled BlackBox that ignores its inputs and
// always reports the same output, used to drive physics evaluators with a
// hand-analyzable controller instead of a full evolved network.
type constantOutputBox struct {
	in  []float64
	out []float64
}

func newConstantOutputBox(inputCount int, outputValue float64) *constantOutputBox {
	return &constantOutputBox{in: make([]float64, inputCount), out: []float64{outputValue}}
}

func (b *constantOutputBox) InputCount() int                 { return len(b.in) }
func (b *constantOutputBox) OutputCount() int                { return len(b.out) }
func (b *constantOutputBox) InputVector() engine.InputView   { return constantInputView{b.in} }
func (b *constantOutputBox) OutputVector() engine.OutputView { return constantOutputView{b.out} }
func (b *constantOutputBox) Activate()                       {}
func (b *constantOutputBox) ResetState()                     {}
func (b *constantOutputBox) Dispose()                        {}
