package draw

import (
	"github.com/tomz197/spaceshooter/internal/scene"
)

// Label is text anchored to a canvas cell (1-based).
type Label struct {
	Col, Row int
	Text     string
}

// Painter rasterizes scenes onto a canvas.
type Painter struct {
	canvas    *Canvas
	labels    []Label
	labelRows []int // Rows that held labels last frame
}

// NewPainter creates a painter for c.
func NewPainter(c *Canvas) *Painter {
	return &Painter{canvas: c}
}

// Canvas returns the canvas being painted.
func (p *Painter) Canvas() *Canvas {
	return p.canvas
}

// Paint clears the canvas and draws every call of s in order.
func (p *Painter) Paint(s *scene.Scene) {
	p.canvas.Clear()
	p.labels = p.labels[:0]
	for i := range s.Calls {
		p.paintCall(&s.Calls[i])
	}
}

// Present renders the canvas diff and the labels into cw. Rows that held
// labels last frame are repainted so old text does not linger.
func (p *Painter) Present(cw *ChunkWriter) {
	for _, row := range p.labelRows {
		p.canvas.InvalidateRow(row - 1)
	}
	p.canvas.Render(cw)

	p.labelRows = p.labelRows[:0]
	for _, l := range p.labels {
		cw.WriteAt(l.Col, l.Row, l.Text)
		p.labelRows = append(p.labelRows, l.Row)
	}
}

// paintCall draws one sprite.
func (p *Painter) paintCall(call *scene.Call) {
	c := p.canvas
	x, y, size := call.X, call.Y, call.Size
	half := size / 2

	switch call.Kind {
	case scene.KindStar:
		c.SetFloat(x, y)
		if size >= 2 {
			c.SetFloat(x+1/c.scaleX, y)
		}

	case scene.KindAsteroid:
		c.DrawPolygon(asteroidPoints(c, x, y, size, call.Variant), false)

	case scene.KindCollectible:
		c.DrawCircle(x, y, half)
		c.FillCircle(x, y, half*0.4, 1)

	case scene.KindPowerup:
		c.DrawPolygon(diamondPoints(c, x, y, size), false)
		if call.Variant == 0 { // Shield
			c.DrawCircle(x, y, half*0.45)
		} else { // Speed
			c.DrawLine(Point{X: x - half*0.4, Y: y - half*0.35}, Point{X: x, Y: y})
			c.DrawLine(Point{X: x, Y: y}, Point{X: x - half*0.4, Y: y + half*0.35})
			c.DrawLine(Point{X: x, Y: y - half*0.35}, Point{X: x + half*0.4, Y: y})
			c.DrawLine(Point{X: x + half*0.4, Y: y}, Point{X: x, Y: y + half*0.35})
		}

	case scene.KindBoss:
		c.DrawPolygon(bossPoints(c, x, y, size), true)
		p.addLabel(x, y-half, call.Label)

	case scene.KindBullet:
		c.DrawLine(Point{X: x - half, Y: y}, Point{X: x + half, Y: y})

	case scene.KindPlayer:
		c.DrawPolygon(shipPoints(c, x, y, size), call.Variant == 0)
		if call.Variant != 0 {
			// Boosted: hollow hull with exhaust trails.
			for _, dy := range [3]float64{-0.4, 0, 0.4} {
				c.DrawLine(Point{X: x - half*1.1, Y: y + half*dy}, Point{X: x - half*1.6, Y: y + half*dy})
			}
		}
		if call.Shielded {
			c.DrawCircle(x, y, size*0.75)
		}

	case scene.KindExplosion:
		density := call.Alpha / 255
		c.FillCircle(x, y, half, density)
		if density > 0 {
			c.DrawCircle(x, y, half)
		}
	}
}

// addLabel centers text just above a logical point.
func (p *Painter) addLabel(x, y float64, text string) {
	if text == "" {
		return
	}
	col, row := p.canvas.LogicalToTerminal(x, y)
	row--
	if row < 1 {
		row = 1
	}
	col -= len(text) / 2
	if col < 1 {
		col = 1
	}
	p.labels = append(p.labels, Label{Col: col, Row: row, Text: text})
}
