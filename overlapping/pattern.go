package overlapping

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// quantize assigns a dense color index to each unique 32-bit color in
// pixels in order of first occurrence, returning the per-pixel index
// slice and the index->color palette.
//
// Complexity: O(len(pixels)).
func quantize(pixels []uint32) (sample []int, palette []uint32) {
	index := make(map[uint32]int, len(pixels))
	sample = make([]int, len(pixels))
	for i, c := range pixels {
		idx, ok := index[c]
		if !ok {
			idx = len(palette)
			index[c] = idx
			palette = append(palette, c)
		}
		sample[i] = idx
	}

	return sample, palette
}

// rotate90CW rotates an N×N patch of color indices 90 degrees clockwise:
// result[x + y*N] = p[N-1-y + x*N].
func rotate90CW(p []int, n int) []int {
	out := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[(n-1-y)+x*n]
		}
	}

	return out
}

// reflectH reflects an N×N patch of color indices horizontally:
// result[x + y*N] = p[N-1-x + y*N].
func reflectH(p []int, n int) []int {
	out := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = p[(n-1-x)+y*n]
		}
	}

	return out
}

// patchAt reads the N×N patch anchored at sample origin (ox,oy), wrapping
// by sampleW/sampleH iff periodic.
func patchAt(sample []int, sampleW, sampleH, n, ox, oy int, periodic bool) []int {
	out := make([]int, n*n)
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			x, y := ox+dx, oy+dy
			if periodic {
				x %= sampleW
				y %= sampleH
			}
			out[dx+dy*n] = sample[x+y*sampleW]
		}
	}

	return out
}

// patchBytes serializes a patch of color indices to bytes for hashing,
// independent of the host's native int width.
func patchBytes(p []int) []byte {
	buf := make([]byte, 4*len(p))
	for i, v := range p {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}

	return buf
}

// extractPatterns walks every valid N×N origin in sample, generates up
// to `symmetry` rotation/reflection variants per origin, and
// deduplicates them by a stable farm.Hash64 fingerprint (SPEC_FULL.md
// §2.2/§4.4), accumulating a weight per distinct pattern equal to its
// occurrence count.
//
// Complexity: O(xmax*ymax*symmetry*N²) to build and hash every variant.
func extractPatterns(sample []int, sampleW, sampleH, n, symmetry int, periodicInput bool) (patterns [][]int, weights []float64) {
	xmax, ymax := sampleW, sampleH
	if !periodicInput {
		xmax = sampleW - n + 1
		ymax = sampleH - n + 1
	}
	if xmax <= 0 || ymax <= 0 {
		return nil, nil
	}

	seen := make(map[uint64]int)

	for oy := 0; oy < ymax; oy++ {
		for ox := 0; ox < xmax; ox++ {
			p0 := patchAt(sample, sampleW, sampleH, n, ox, oy, periodicInput)
			p1 := reflectH(p0, n)
			p2 := rotate90CW(p0, n)
			p3 := reflectH(p2, n)
			p4 := rotate90CW(p2, n)
			p5 := reflectH(p4, n)
			p6 := rotate90CW(p4, n)
			p7 := reflectH(p6, n)
			variants := [8][]int{p0, p1, p2, p3, p4, p5, p6, p7}

			for v := 0; v < symmetry; v++ {
				h := farm.Hash64(patchBytes(variants[v]))
				if idx, ok := seen[h]; ok {
					weights[idx]++
					continue
				}
				seen[h] = len(patterns)
				patterns = append(patterns, variants[v])
				weights = append(weights, 1)
			}
		}
	}

	return patterns, weights
}
