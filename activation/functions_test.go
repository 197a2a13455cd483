package activation

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestFactory_GetAndApply(t *testing.T) {
	f := NewFactory()
	fn, err := f.Get(SigmoidPlain)
	require.NoError(t, err)

	buf := []float64{0.0, 100.0, -100.0, 1.5}
	fn(buf, 0, len(buf))
	assert.InDelta(t, 0.5, buf[0], 1e-9)
	assert.InDelta(t, 1.0, buf[1], 1e-9)
	assert.InDelta(t, 0.0, buf[2], 1e-9)
}

func TestFactory_AppliesOnlyToSubrange(t *testing.T) {
	f := NewFactory()
	fn, err := f.Get(Linear)
	require.NoError(t, err)

	sign, err2 := f.Get(Sign)
	require.NoError(t, err2)

	buf := []float64{1, 2, 3, 4, 5}
	fn(buf, 1, 3)
	// linear is a no-op, so nothing changes anywhere
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, buf)

	// Sign rewrites every slot it touches, so the untouched slots are the real assertion
	buf = []float64{-5, 2, 3, -4, 5}
	sign(buf, 1, 3)
	assert.Equal(t, []float64{-5, 1, 1, -4, 5}, buf)
}

func TestFactory_UnknownType(t *testing.T) {
	f := NewFactory()
	_, err := f.Get(Type(255))
	require.Error(t, err)

	_, err = f.NameFromType(Type(255))
	require.Error(t, err)

	_, err = f.TypeFromName("nope")
	require.Error(t, err)
}

func TestFactory_NameRoundTrip(t *testing.T) {
	f := NewFactory()
	for _, typ := range []Type{SigmoidPlain, SigmoidSteepened, SigmoidBipolar, Tanh, Gaussian,
		Linear, LinearClipped, Sign, Sine, Step} {
		name, err := f.NameFromType(typ)
		require.NoError(t, err)
		back, err := f.TypeFromName(name)
		require.NoError(t, err)
		assert.Equal(t, typ, back)
	}
}

func TestSign(t *testing.T) {
	fn, err := NewFactory().Get(Sign)
	require.NoError(t, err)
	buf := []float64{-5, 0, 5, math.NaN()}
	fn(buf, 0, len(buf))
	assert.Equal(t, -1.0, buf[0])
	assert.Equal(t, 0.0, buf[1])
	assert.Equal(t, 1.0, buf[2])
	assert.Equal(t, 0.0, buf[3])
}

func TestBipolarSigmoidRange(t *testing.T) {
	fn, err := NewFactory().Get(SigmoidBipolar)
	require.NoError(t, err)
	buf := []float64{-1000, 1000}
	fn(buf, 0, len(buf))
	assert.InDelta(t, -1.0, buf[0], 1e-9)
	assert.InDelta(t, 1.0, buf[1], 1e-9)
}
