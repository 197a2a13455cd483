package stats

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDumpTrace_WritesNonEmptyArchive(t *testing.T) {
	tr := NewTrace(2, 1)
	tr.Record([]float64{1, 0}, []float64{0.7}, 1.0)
	tr.Record([]float64{0, 1}, []float64{0.3}, 2.0)

	var buf bytes.Buffer
	err := DumpTrace(&buf, tr)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestTrace_RecordsStepCount(t *testing.T) {
	tr := NewTrace(1, 1)
	for i := 0; i < 5; i++ {
		tr.Record([]float64{float64(i)}, []float64{float64(i)}, 0)
	}
	assert.Equal(t, 5, tr.steps)
}
