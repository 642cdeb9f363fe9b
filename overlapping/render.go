package overlapping

import "github.com/katalvlaran/wavecollapse/grid"

// Render writes one packed RGBA pixel per output cell into out (which
// must have length Dims().Len()), per SPEC_FULL.md §4.4: a collapsed
// cell's color is its observed pattern's top-left (anchor) pixel; an
// uncollapsed cell is a superposition blend across every still-possible
// pattern reachable from a neighboring cell's overlap offset. A cell
// with no contributors (fully non-periodic edge with no possible
// pattern) renders opaque black.
//
// Complexity: O(W*H*N²*T).
func (m *Model) Render(out []uint32) {
	for y := 0; y < m.dims.H; y++ {
		for x := 0; x < m.dims.W; x++ {
			i := grid.Index(m.dims, x, y)
			out[i] = m.renderCell(x, y, i)
		}
	}
}

func (m *Model) renderCell(x, y, i int) uint32 {
	if t := m.Wave.Observed(i); t != -1 {
		return m.palette[m.patterns[t][0]]
	}

	var rSum, gSum, bSum, count uint64

	for dsy := 0; dsy < m.patternN; dsy++ {
		for dsx := 0; dsx < m.patternN; dsx++ {
			sx, sy, ok := grid.WrapCoordinate(m.dims.W, m.dims.H, x-dsx, y-dsy, m.dims.Periodic)
			if !ok {
				continue
			}
			si := grid.Index(m.dims, sx, sy)
			for _, t := range m.Wave.Possible(si) {
				c := m.palette[m.patterns[t][dsx+dsy*m.patternN]]
				rSum += uint64(c & 0xFF)
				gSum += uint64((c >> 8) & 0xFF)
				bSum += uint64((c >> 16) & 0xFF)
				count++
			}
		}
	}

	if count == 0 {
		return 0xFF000000
	}

	r := uint32(rSum / count)
	g := uint32(gSum / count)
	b := uint32(bSum / count)

	return r | (g << 8) | (b << 16) | 0xFF000000
}
