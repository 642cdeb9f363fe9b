package tileset

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// rotate90CW rotates a size×size pixel buffer 90 degrees clockwise,
// mirroring the overlapping package's patch rotation (SPEC_FULL.md §4.5:
// "variant pixels are produced by repeated 90° CW rotation and
// horizontal reflection of the source pixels").
func rotate90CW(p []uint32, size int) []uint32 {
	out := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[x+y*size] = p[(size-1-y)+x*size]
		}
	}

	return out
}

// reflectH reflects a size×size pixel buffer horizontally.
func reflectH(p []uint32, size int) []uint32 {
	out := make([]uint32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out[x+y*size] = p[(size-1-x)+y*size]
		}
	}

	return out
}

// variantPixels produces every variant's pixel buffer for a tile's
// symmetry class, in the same index order buildAction assumes: a
// rotation chain for classes with pure rotational variants, plus their
// horizontal reflections for classes that also flip.
//
// Complexity: O(Cardinality() * Size²).
func variantPixels(original []uint32, size int, class Symmetry) [][]uint32 {
	switch class {
	case SymX:
		return [][]uint32{original}
	case SymI:
		return [][]uint32{original, rotate90CW(original, size)}
	case SymSlash:
		return [][]uint32{original, reflectH(original, size)}
	case SymL, SymT:
		r1 := rotate90CW(original, size)
		r2 := rotate90CW(r1, size)
		r3 := rotate90CW(r2, size)

		return [][]uint32{original, r1, r2, r3}
	case SymF:
		r1 := rotate90CW(original, size)
		r2 := rotate90CW(r1, size)
		r3 := rotate90CW(r2, size)

		return [][]uint32{
			original, r1, r2, r3,
			reflectH(original, size), reflectH(r1, size), reflectH(r2, size), reflectH(r3, size),
		}
	default:
		return [][]uint32{original}
	}
}

// fingerprint computes a seahash digest of a variant's pixel buffer.
// Assemble stores it in Assembly.Fingerprints for duplicate-variant
// diagnostics; it neither logs it nor uses it to alter assembly.
//
// Complexity: O(Size²).
func fingerprint(pixels []uint32) uint64 {
	buf := make([]byte, 4*len(pixels))
	for i, p := range pixels {
		binary.LittleEndian.PutUint32(buf[4*i:], p)
	}

	h := seahash.New()
	h.Write(buf)

	return h.Sum64()
}
