package physics

import (
	"math/rand"
	"testing"

	"github.com/decker502/dualcharge/pkg/components"
)

func box(x, y, w, h float64) components.Body {
	return components.NewBody(components.Vec2{X: x, Y: y}, components.Vec2{X: w, Y: h})
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Body
		want Side
	}{
		{"separated horizontally", box(0, 0, 10, 10), box(20, 0, 10, 10), SideNone},
		{"edges touching", box(0, 0, 10, 10), box(10, 0, 10, 10), SideNone},
		{"a enters b from the left", box(0, 0, 10, 10), box(8, 0, 10, 10), SideLeft},
		{"a enters b from the right", box(8, 0, 10, 10), box(0, 0, 10, 10), SideRight},
		{"a enters b from above", box(0, 0, 10, 10), box(0, 9, 10, 10), SideTop},
		{"a enters b from below", box(0, 9, 10, 10), box(0, 0, 10, 10), SideBottom},
		{"smaller y overlap wins", box(0, 0, 10, 10), box(2, 9, 10, 10), SideTop},
		{"exact tie prefers horizontal", box(0, 0, 10, 10), box(8, 8, 10, 10), SideLeft},
		{"thin wall on the left", box(3, 50, 10, 10), box(-5, 50, 10, 200), SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollideDepth(t *testing.T) {
	c := Collide(box(0, 0, 10, 10), box(8, 0, 10, 10))
	if c.Side != SideLeft {
		t.Fatalf("expected left side, got %v", c.Side)
	}
	// a.maxX = 5, b.minX = 3
	if c.Depth != 2 {
		t.Errorf("expected depth 2, got %f", c.Depth)
	}

	if c := Collide(box(0, 0, 10, 10), box(50, 50, 10, 10)); c.Side != SideNone || c.Depth != 0 {
		t.Errorf("expected empty contact for separated bodies, got %+v", c)
	}
}

// TestOverlapSymmetry 检测结果对称，返回的侧互为镜像
func TestOverlapSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := box(rng.Float64()*40, rng.Float64()*40, 1+rng.Float64()*20, 1+rng.Float64()*20)
		b := box(rng.Float64()*40, rng.Float64()*40, 1+rng.Float64()*20, 1+rng.Float64()*20)

		if Intersects(a, b) != Intersects(b, a) {
			t.Fatalf("detection not symmetric for %+v / %+v", a, b)
		}

		ab := Overlap(a, b)
		ba := Overlap(b, a)
		if (ab == SideNone) != (ba == SideNone) {
			t.Fatalf("overlap not symmetric for %+v / %+v: %v vs %v", a, b, ab, ba)
		}
		if ab == SideNone {
			continue
		}
		if ba != ab.Opposite() {
			t.Fatalf("expected mirrored sides, got %v and %v for %+v / %+v", ab, ba, a, b)
		}
	}
}

func TestFullOverlapReportsOnce(t *testing.T) {
	player := box(100, 100, 32, 32)
	particle := box(100, 100, 24, 24)

	if !Intersects(player, particle) {
		t.Fatal("fully overlapping bodies must intersect")
	}
	if Overlap(player, particle) == SideNone {
		t.Error("fully overlapping bodies must report a side")
	}
}

func TestSideHelpers(t *testing.T) {
	tests := []struct {
		side       Side
		opposite   Side
		normal     components.Vec2
		horizontal bool
	}{
		{SideLeft, SideRight, components.Vec2{X: -1}, true},
		{SideRight, SideLeft, components.Vec2{X: 1}, true},
		{SideTop, SideBottom, components.Vec2{Y: -1}, false},
		{SideBottom, SideTop, components.Vec2{Y: 1}, false},
		{SideNone, SideNone, components.Vec2{}, false},
	}
	for _, tt := range tests {
		if got := tt.side.Opposite(); got != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.side, got, tt.opposite)
		}
		if got := tt.side.Normal(); got != tt.normal {
			t.Errorf("%v.Normal() = %v, want %v", tt.side, got, tt.normal)
		}
		if got := tt.side.Horizontal(); got != tt.horizontal {
			t.Errorf("%v.Horizontal() = %v, want %v", tt.side, got, tt.horizontal)
		}
	}
}

func TestPushOut(t *testing.T) {
	wall := components.Body{Pos: components.Vec2{X: 10, Y: 250}, Half: components.Vec2{X: 10, Y: 250}}

	tests := []struct {
		name string
		pos  components.Vec2
		want components.Vec2
	}{
		{"into right side", components.Vec2{X: 31, Y: 100}, components.Vec2{X: 32, Y: 100}},
		{"into left side", components.Vec2{X: -11, Y: 100}, components.Vec2{X: -12, Y: 100}},
		{"no overlap", components.Vec2{X: 200, Y: 100}, components.Vec2{X: 200, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := components.Body{Pos: tt.pos, Half: components.Vec2{X: 12, Y: 12}}
			got := PushOut(body, wall, Overlap(body, wall))
			if got != tt.want {
				t.Errorf("PushOut = %+v, want %+v", got, tt.want)
			}
		})
	}

	ceiling := components.Body{Pos: components.Vec2{X: 300, Y: 10}, Half: components.Vec2{X: 300, Y: 10}}
	body := components.Body{Pos: components.Vec2{X: 300, Y: 28}, Half: components.Vec2{X: 12, Y: 12}}
	if side := Overlap(body, ceiling); side != SideBottom {
		t.Fatalf("expected bottom side, got %v", side)
	}
	if got := PushOut(body, ceiling, SideBottom); got.Y != 32 {
		t.Errorf("expected y=32 after push out, got %v", got.Y)
	}
}
