package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/spaceshooter/internal/scene"
)

func flushed(t *testing.T, cw *ChunkWriter, buf *bytes.Buffer) string {
	t.Helper()
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	out := buf.String()
	buf.Reset()
	return out
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		wantW, wantH, col, row int
	}{
		{"fits", 100, 40, 100, 40, 0, 0},
		{"too wide", 300, 40, 240, 40, 30, 0},
		{"too tall", 100, 100, 100, 80, 0, 10},
		{"both", 250, 90, 240, 80, 5, 5},
		{"zero", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := ClampTermSize(tt.w, tt.h, 240, 80)
			if w != tt.wantW || h != tt.wantH || col != tt.col || row != tt.row {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)", w, h, col, row, tt.wantW, tt.wantH, tt.col, tt.row)
			}
		})
	}
}

func TestChunkWriterAppliesOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if got := flushed(t, cw, &buf); got != "\033[3;4Hhi" {
		t.Errorf("got %q", got)
	}
	if cw.buf.Len() != 0 {
		t.Error("Flush should empty the buffer")
	}
}

func TestChunkWriterFlushesLargeFrames(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if got := flushed(t, cw, &buf); got != big {
		t.Errorf("flushed %d bytes, want %d", len(got), len(big))
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	c := NewScaledCanvas(10, 5, 10, 10)

	c.SetFloat(2, 2) // col 3, row 2, top half
	c.Render(cw)
	first := flushed(t, cw, &buf)
	if !strings.Contains(first, "\033[2;3H▀") {
		t.Fatalf("first render missing pixel: %q", first)
	}
	if strings.Count(first, "\033[") != 1 {
		t.Errorf("first render should only write the lit cell: %q", first)
	}

	c.Clear()
	c.SetFloat(2, 2)
	c.Render(cw)
	if got := flushed(t, cw, &buf); got != "" {
		t.Errorf("unchanged frame wrote %q", got)
	}

	c.Clear()
	c.Render(cw)
	if got := flushed(t, cw, &buf); got != "\033[2;3H " {
		t.Errorf("erased pixel should be blanked, got %q", got)
	}
}

func TestForceRedrawRepaints(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	c := NewScaledCanvas(10, 5, 10, 10)
	c.SetFloat(0, 0)
	c.Render(cw)
	flushed(t, cw, &buf)

	c.ForceRedraw()
	c.Render(cw)
	if got := flushed(t, cw, &buf); !strings.Contains(got, "▀") {
		t.Errorf("forced render should repaint lit cells, got %q", got)
	}
}

func TestRenderUsesOffset(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetOffset(5, 1)
	c.SetFloat(0, 1) // bottom half of row 1
	c.Render(cw)
	if got := flushed(t, cw, &buf); got != "\033[2;6H▄" {
		t.Errorf("got %q", got)
	}
}

func TestFillCircleDensity(t *testing.T) {
	count := func(density float64) int {
		c := NewScaledCanvas(40, 20, 40, 40)
		c.FillCircle(20, 20, 10, density)
		n := 0
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				if c.Pixel(x, y) {
					n++
				}
			}
		}
		return n
	}

	solid, half, none := count(1), count(0.5), count(0)
	if none != 0 {
		t.Errorf("density 0 lit %d pixels", none)
	}
	if half == 0 || half >= solid {
		t.Errorf("half density lit %d pixels, solid %d", half, solid)
	}
}

func TestPainterBossLabel(t *testing.T) {
	c := NewScaledCanvas(96, 32, 960, 640)
	p := NewPainter(c)
	s := &scene.Scene{}
	s.Add(scene.Call{Kind: scene.KindBoss, X: 480, Y: 320, Size: 80, Label: "HP: 10"})
	p.Paint(s)

	labels := p.labels
	if len(labels) != 1 || labels[0].Text != "HP: 10" {
		t.Fatalf("labels = %+v", labels)
	}
	_, bossRow := c.LogicalToTerminal(480, 320)
	if labels[0].Row >= bossRow {
		t.Errorf("label row %d should be above boss row %d", labels[0].Row, bossRow)
	}
	if !c.Pixel(48, 32) {
		t.Error("boss hull should be filled at its center")
	}
}

func TestPainterExplosionFades(t *testing.T) {
	c := NewScaledCanvas(96, 32, 960, 640)
	p := NewPainter(c)
	s := &scene.Scene{}
	s.Add(scene.Call{Kind: scene.KindExplosion, X: 480, Y: 320, Size: 180, Alpha: 0})
	p.Paint(s)
	for y := 0; y < 64; y++ {
		for x := 0; x < 96; x++ {
			if c.Pixel(x, y) {
				t.Fatalf("fully faded explosion drew pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestPresentErasesOldLabels(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf, 0, 0)
	c := NewScaledCanvas(20, 10, 20, 20)
	p := NewPainter(c)

	s := &scene.Scene{}
	s.Add(scene.Call{Kind: scene.KindBoss, X: 10, Y: 10, Size: 4, Label: "HP: 1"})
	p.Paint(s)
	p.Present(cw)
	if got := flushed(t, cw, &buf); !strings.Contains(got, "HP: 1") {
		t.Fatalf("label not written: %q", got)
	}

	s.Reset()
	p.Paint(s)
	p.Present(cw)
	got := flushed(t, cw, &buf)
	if strings.Contains(got, "HP") {
		t.Errorf("label should be gone, got %q", got)
	}
	if !strings.Contains(got, "\033[4;9H ") {
		t.Errorf("old label cells should be blanked, got %q", got)
	}
}

func TestShadeLevel(t *testing.T) {
	if ShadeLevel(-1) != ' ' || ShadeLevel(0) != ' ' {
		t.Error("non-positive intensity should be empty")
	}
	if ShadeLevel(1) != '█' || ShadeLevel(2) != '█' {
		t.Error("full intensity should be solid")
	}
	if ShadeLevel(0.5) != '▒' {
		t.Errorf("ShadeLevel(0.5) = %q", ShadeLevel(0.5))
	}
}
