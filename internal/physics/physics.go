// Package physics provides collision detection and distance utilities.
package physics

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap (strictly closer than r1+r2).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// SpritesOverlap reports whether two square sprites, treated as circles of
// diameter size, are touching: distance between centers < (sizeA+sizeB)/2.
func SpritesOverlap(ax, ay, sizeA, bx, by, sizeB float64) bool {
	return CirclesOverlap(ax, ay, sizeA/2, bx, by, sizeB/2)
}

// Clamp limits v to [lo, hi]. If lo > hi, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// MapRange linearly maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
