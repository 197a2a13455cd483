package engine

import "sync"

// bucketSize rounds n up to the next power-of-two-ish bucket so that a
// modest number of distinct pools serves engines built over graphs of many
// different sizes without one pool per exact size.
func bucketSize(n int) int {
	size := 64
	for size < n {
		size *= 2
	}
	return size
}

// arrayPool hands out float64 slices of a fixed capacity, reused across
// engine construct/dispose cycles. The evolutionary loop that drives this
// module constructs and discards large numbers of engines per generation;
// pooling the activation arrays avoids putting that churn on the garbage
// collector, the same concern the teacher addresses by reusing
// neuronSignals/neuronSignalsBeingProcessed across ActivateSteps calls
// instead of reallocating per activation.
type arrayPool struct {
	pools sync.Map // bucketSize -> *sync.Pool
}

var defaultArrayPool = &arrayPool{}

func (p *arrayPool) get(size int) []float64 {
	bucket := bucketSize(size)
	poolIface, _ := p.pools.LoadOrStore(bucket, &sync.Pool{
		New: func() interface{} {
			buf := make([]float64, bucket)
			return &buf
		},
	})
	pool := poolIface.(*sync.Pool)
	bufPtr := pool.Get().(*[]float64)
	buf := (*bufPtr)[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func (p *arrayPool) put(buf []float64) {
	bucket := bucketSize(cap(buf))
	poolIface, ok := p.pools.Load(bucket)
	if !ok {
		return
	}
	full := buf[:cap(buf)]
	pool := poolIface.(*sync.Pool)
	pool.Put(&full)
}
