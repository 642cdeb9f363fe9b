package tiled

import "github.com/katalvlaran/wavecollapse/grid"

// Render writes the tile-stamped output into out, which must have
// length Dims().Len()*TileSize². Output is W·ts × H·ts pixels (row-major,
// ts = TileSize), per SPEC_FULL.md §4.5: a collapsed cell stamps its
// observed tile's pixels; an uncollapsed cell either stamps opaque black
// (WithBlackBackground) or blends every still-possible tile's pixels,
// weighted by w_t / Σ_{t possible} w_t, for each pixel offset.
//
// Complexity: O(W*H*ts²*T).
func (m *Model) Render(out []uint32) {
	ts := m.tileSize
	outW := m.dims.W * ts

	for y := 0; y < m.dims.H; y++ {
		for x := 0; x < m.dims.W; x++ {
			i := grid.Index(m.dims, x, y)
			m.renderCell(out, i, x*ts, y*ts, outW)
		}
	}
}

func (m *Model) renderCell(out []uint32, i, ox, oy, outW int) {
	ts := m.tileSize

	if t := m.Wave.Observed(i); t != -1 {
		src := m.asm.Pixels[t]
		for dy := 0; dy < ts; dy++ {
			for dx := 0; dx < ts; dx++ {
				out[(ox+dx)+(oy+dy)*outW] = src[dx+dy*ts]
			}
		}

		return
	}

	if m.black {
		for dy := 0; dy < ts; dy++ {
			for dx := 0; dx < ts; dx++ {
				out[(ox+dx)+(oy+dy)*outW] = 0xFF000000
			}
		}

		return
	}

	possible := m.Wave.Possible(i)
	var sumWeight float64
	for _, t := range possible {
		sumWeight += m.asm.Weights[t]
	}

	for dy := 0; dy < ts; dy++ {
		for dx := 0; dx < ts; dx++ {
			out[(ox+dx)+(oy+dy)*outW] = m.blendPixel(possible, sumWeight, dx+dy*ts)
		}
	}
}

func (m *Model) blendPixel(possible []int, sumWeight float64, offset int) uint32 {
	if sumWeight <= 0 {
		return 0xFF000000
	}

	var r, g, b float64
	for _, t := range possible {
		c := m.asm.Pixels[t][offset]
		w := m.asm.Weights[t] / sumWeight
		r += w * float64(c&0xFF)
		g += w * float64((c>>8)&0xFF)
		b += w * float64((c>>16)&0xFF)
	}

	return uint32(r) | (uint32(g) << 8) | (uint32(b) << 16) | 0xFF000000
}
