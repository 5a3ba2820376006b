// Package draw rasterizes scenes onto a terminal using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// bayer4 is a 4x4 ordered-dither threshold matrix.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// dithered reports whether pixel (x, y) is lit at the given density in [0, 1].
func dithered(x, y int, density float64) bool {
	if density >= 1 {
		return true
	}
	if density <= 0 {
		return false
	}
	return float64(bayer4[y&3][x&3]) < density*16
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
