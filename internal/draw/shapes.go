package draw

import "math"

// Sprite outlines in logical coordinates. Each builder fills a buffer from
// Canvas.BorrowPoints, so the result is only valid until the next borrow.

// asteroidProfiles are radius multipliers per vertex for the two rock variants.
var asteroidProfiles = [2][]float64{
	{1.0, 0.82, 0.95, 0.7, 1.0, 0.88, 0.76, 0.98, 0.85},
	{0.9, 1.0, 0.72, 0.93, 0.8, 1.0, 0.68, 0.9, 0.96, 0.78},
}

// shipPoints returns a right-facing arrowhead ship.
func shipPoints(c *Canvas, x, y, size float64) []Point {
	h := size / 2
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: x + h, Y: y}
	pts[1] = Point{X: x - h, Y: y - h*0.8}
	pts[2] = Point{X: x - h*0.45, Y: y}
	pts[3] = Point{X: x - h, Y: y + h*0.8}
	return pts
}

// asteroidPoints returns a lumpy rock outline. variant selects the profile.
func asteroidPoints(c *Canvas, x, y, size float64, variant int) []Point {
	profile := asteroidProfiles[0]
	if variant == 2 {
		profile = asteroidProfiles[1]
	}
	r := size / 2
	pts := c.BorrowPoints(len(profile))
	for i, m := range profile {
		a := 2 * math.Pi * float64(i) / float64(len(profile))
		pts[i] = Point{X: x + r*m*math.Cos(a), Y: y + r*m*math.Sin(a)}
	}
	return pts
}

// diamondPoints returns a diamond inscribed in the sprite box.
func diamondPoints(c *Canvas, x, y, size float64) []Point {
	h := size / 2
	pts := c.BorrowPoints(4)
	pts[0] = Point{X: x, Y: y - h}
	pts[1] = Point{X: x + h, Y: y}
	pts[2] = Point{X: x, Y: y + h}
	pts[3] = Point{X: x - h, Y: y}
	return pts
}

// bossPoints returns a hexagonal hull with its point facing left.
func bossPoints(c *Canvas, x, y, size float64) []Point {
	h := size / 2
	pts := c.BorrowPoints(6)
	pts[0] = Point{X: x - h, Y: y}
	pts[1] = Point{X: x - h*0.4, Y: y - h}
	pts[2] = Point{X: x + h*0.7, Y: y - h}
	pts[3] = Point{X: x + h, Y: y}
	pts[4] = Point{X: x + h*0.7, Y: y + h}
	pts[5] = Point{X: x - h*0.4, Y: y + h}
	return pts
}
