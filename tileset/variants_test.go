package tileset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariantPixels_X_SingleVariant(t *testing.T) {
	p := []uint32{1, 2, 3, 4}
	out := variantPixels(p, 2, SymX)
	require.Len(t, out, 1)
	require.Equal(t, p, out[0])
}

func TestVariantPixels_L_FourDistinctRotations(t *testing.T) {
	p := []uint32{1, 2, 3, 4}
	out := variantPixels(p, 2, SymL)
	require.Len(t, out, 4)
	require.Equal(t, rotate90CW(p, 2), out[1])
	require.Equal(t, rotate90CW(out[1], 2), out[2])
}

func TestFingerprint_Deterministic(t *testing.T) {
	p := []uint32{10, 20, 30, 40}
	require.Equal(t, fingerprint(p), fingerprint(p))
}

func TestFingerprint_DiffersOnDifferentPixels(t *testing.T) {
	require.NotEqual(t, fingerprint([]uint32{1, 2}), fingerprint([]uint32{2, 1}))
}
