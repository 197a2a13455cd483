package genome

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"strings"
	"testing"
)

func TestLoad_XORLikeFixture(t *testing.T) {
	f, err := os.Open("testdata/xor_like.yaml")
	require.NoError(t, err)
	defer f.Close()

	doc, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.InputCount)
	assert.Equal(t, 1, doc.OutputCount)
	assert.Len(t, doc.Connections, 4)
	assert.Equal(t, 5, doc.Connections[0].Target)
}

func TestLoad_ToleratesLooseNumericTypes(t *testing.T) {
	// weight written as an int, counts written as floats — cast.* must coerce.
	raw := `
genome:
  inputCount: 2.0
  outputCount: 1.0
  connections:
    - source: 0
      target: 2
      weight: 1
`
	doc, err := Load(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.InputCount)
	assert.Equal(t, 1, doc.OutputCount)
	assert.Equal(t, 1.0, doc.Connections[0].Weight)
}

func TestLoad_MissingGenomeKey(t *testing.T) {
	_, err := Load(strings.NewReader("notgenome: {}"))
	require.Error(t, err)
}

func TestLoad_MalformedConnections(t *testing.T) {
	raw := `
genome:
  inputCount: 1
  outputCount: 1
  connections: "not a list"
`
	_, err := Load(strings.NewReader(raw))
	require.Error(t, err)
}

func TestBuildCyclic_FromFixture(t *testing.T) {
	f, err := os.Open("testdata/xor_like.yaml")
	require.NoError(t, err)
	defer f.Close()

	g, err := BuildCyclic(f)
	require.NoError(t, err)
	assert.Equal(t, 3, g.InputCount)
	assert.Equal(t, 1, g.OutputCount)
	assert.Equal(t, 5, g.TotalNodeCount)
}
