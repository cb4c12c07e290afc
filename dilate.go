package atlas

import (
	"image"
	"image/draw"
)

// dilate fills dst with src extended according to the wrap mode. The source
// occupies the region starting at (marginX, marginY) in dst coordinates and
// is copied verbatim; every destination pixel outside it maps back into the
// source per the wrap rule. dst must already be allocated at the desired
// output size. Pure function of its inputs aside from writing dst.
func dilate(dst draw.Image, src image.Image, wrap WrapMode, marginX, marginY int) {
	sb := src.Bounds()
	db := dst.Bounds()
	width, height := db.Dx(), db.Dy()

	for y := 0; y < height; y++ {
		sy := sb.Min.Y + wrapIndex(wrap, y-marginY, sb.Dy())
		for x := 0; x < width; x++ {
			sx := sb.Min.X + wrapIndex(wrap, x-marginX, sb.Dx())
			dst.Set(db.Min.X+x, db.Min.Y+y, src.At(sx, sy))
		}
	}
}

// wrapIndex maps a margin-relative coordinate onto [0, dim) per the wrap
// mode. For WrapMirror the tile parity decides reflection: even tiles
// (including tile 0, the live region) reflect, odd tiles do not, producing
// ping-pong tiling across tile boundaries.
func wrapIndex(wrap WrapMode, c, dim int) int {
	switch wrap {
	case WrapRepeat:
		return floorMod(c, dim)
	case WrapMirror:
		base := floorMod(c, dim)
		if floorDiv(c, dim)&1 == 0 {
			return dim - 1 - base
		}
		return base
	default: // WrapClamp
		if c < 0 {
			return 0
		}
		if c > dim-1 {
			return dim - 1
		}
		return c
	}
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the Euclidean remainder of a/b, always in [0, b).
// b must be positive.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (a < 0) != (b < 0) {
		m += b
	}
	return m
}
