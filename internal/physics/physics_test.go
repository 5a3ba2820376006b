package physics

import (
	"math"
	"testing"
)

func TestDistanceSquared(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same point", 0, 0, 0, 0, 0},
		{"horizontal", 0, 0, 5, 0, 25},
		{"diagonal", 0, 0, 3, 4, 25},
		{"negative", -1, -1, 2, 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceSquared(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceSquared = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpritesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		bx     float64
		sizeB  float64
		expect bool
	}{
		{"clearly apart", 100, 30, false},
		{"exactly touching is not a hit", 45, 30, false},
		{"just inside", 44.9, 30, true},
		{"same center", 0, 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ship of size 60 at origin: threshold is (60+30)/2 = 45.
			if got := SpritesOverlap(0, 0, 60, tt.bx, 0, tt.sizeB); got != tt.expect {
				t.Errorf("SpritesOverlap = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp inside = %v", got)
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(0.5, 0, 1, 255, 0); got != 127.5 {
		t.Errorf("MapRange = %v, want 127.5", got)
	}
	if got := MapRange(3, 1, 1, 7, 9); got != 7 {
		t.Errorf("degenerate MapRange = %v, want 7", got)
	}
}
