package overlapping

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantize_FirstOccurrenceOrder(t *testing.T) {
	sample, palette := quantize([]uint32{0xFF0000FF, 0x00FF00FF, 0x00FF00FF, 0xFF0000FF})
	require.Equal(t, []int{0, 1, 1, 0}, sample)
	require.Equal(t, []uint32{0xFF0000FF, 0x00FF00FF}, palette)
}

func TestRotate90CW_Checkerboard_YieldsComplement(t *testing.T) {
	p := []int{0, 1, 1, 0}
	require.Equal(t, []int{1, 0, 0, 1}, rotate90CW(p, 2))
}

func TestReflectH_Checkerboard_YieldsComplement(t *testing.T) {
	p := []int{0, 1, 1, 0}
	require.Equal(t, []int{1, 0, 0, 1}, reflectH(p, 2))
}

func TestExtractPatterns_Checkerboard_TwoCanonicalPatterns(t *testing.T) {
	sample := []int{0, 1, 1, 0}
	patterns, weights := extractPatterns(sample, 2, 2, 2, 8, true)
	require.Len(t, patterns, 2)
	require.Len(t, weights, 2)

	seen := map[string]bool{}
	for _, p := range patterns {
		key := ""
		for _, v := range p {
			key += string(rune('0' + v))
		}
		seen[key] = true
	}
	require.True(t, seen["0110"])
	require.True(t, seen["1001"])
}

func TestExtractPatterns_TooSmallNonPeriodicSample_Empty(t *testing.T) {
	sample := []int{0}
	patterns, weights := extractPatterns(sample, 1, 1, 2, 1, false)
	require.Empty(t, patterns)
	require.Empty(t, weights)
}
