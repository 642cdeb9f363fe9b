package random_test

import (
	"testing"

	"github.com/katalvlaran/wavecollapse/random"
	"github.com/stretchr/testify/require"
)

// TestNext_SeedZero_ReferenceSequence pins the first three outputs for
// seed 0 against the reference mulberry32 sequence (spec §8 scenario 6).
func TestNext_SeedZero_ReferenceSequence(t *testing.T) {
	s := random.New(0)
	want := []float64{
		0.26642920868471265,
		0.0003297457005828619,
		0.2232720274478197,
	}
	for i, w := range want {
		got := s.Next()
		require.InDelta(t, w, got, 1e-9, "output %d", i)
	}
}

func TestNext_Bounds(t *testing.T) {
	s := random.New(12345)
	for i := 0; i < 10_000; i++ {
		v := s.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSameSeed_IdenticalSequence(t *testing.T) {
	a := random.New(42)
	b := random.New(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestClone_IndependentStreams(t *testing.T) {
	a := random.New(7)
	_ = a.Next()
	_ = a.Next()
	clone := a.Clone()

	// Both continue identically from the cloned point...
	wantNext := a.Next()
	gotNext := clone.Next()
	require.Equal(t, wantNext, gotNext)

	// ...but diverging one does not affect the other.
	_ = a.Next()
	require.NotEqual(t, a.Next(), clone.Next())
}

func TestNextInt_Range(t *testing.T) {
	s := random.New(1)
	for i := 0; i < 1000; i++ {
		v := s.NextInt(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestNextInt_NonPositiveMax(t *testing.T) {
	s := random.New(1)
	require.Equal(t, 0, s.NextInt(0))
	require.Equal(t, 0, s.NextInt(-3))
}
