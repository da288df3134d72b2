package systems

import (
	"math"
	"testing"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/world"
)

func TestVelocityFromInput(t *testing.T) {
	const speed = 220.0
	diag := speed / math.Sqrt2

	tests := []struct {
		name string
		in   world.InputState
		want components.Vec2
	}{
		{"无按键", world.InputState{}, components.Vec2{}},
		{"向右", world.InputState{Right: true}, components.Vec2{X: speed}},
		{"向上", world.InputState{Up: true}, components.Vec2{Y: -speed}},
		{"左右抵消", world.InputState{Left: true, Right: true}, components.Vec2{}},
		{"全部按下", world.InputState{Left: true, Right: true, Up: true, Down: true}, components.Vec2{}},
		{"左上斜向", world.InputState{Left: true, Up: true}, components.Vec2{X: -diag, Y: -diag}},
		{"右下斜向", world.InputState{Right: true, Down: true}, components.Vec2{X: diag, Y: diag}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VelocityFromInput(tt.in, speed)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("VelocityFromInput(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if tt.want != (components.Vec2{}) && math.Abs(got.Len()-speed) > 1e-9 {
				t.Errorf("speed should be %.1f, got %.4f", speed, got.Len())
			}
		})
	}
}

func TestPlayerAtRestStaysPut(t *testing.T) {
	ctx := newTestContext(config.DefaultArenaConfig())
	ps := NewPlayerSystem(ctx)
	start := ctx.World.Player.Body.Pos

	for i := 0; i < 300; i++ {
		ps.Update(config.TimeStep)
	}

	if ctx.World.Player.Body.Pos != start {
		t.Errorf("player without input moved from %+v to %+v", start, ctx.World.Player.Body.Pos)
	}
	if ctx.World.Player.Body.Vel != (components.Vec2{}) {
		t.Errorf("expected zero velocity, got %+v", ctx.World.Player.Body.Vel)
	}
}

func TestPlayerStaysInsideArena(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	inputs := []world.InputState{
		{Left: true},
		{Right: true},
		{Up: true},
		{Down: true},
		{Left: true, Up: true},
		{Right: true, Down: true},
	}

	for _, in := range inputs {
		ctx := newTestContext(cfg)
		ctx.Input = in
		ps := NewPlayerSystem(ctx)
		interior := components.Rect{
			Min: components.Vec2{X: cfg.Arena.Margin, Y: cfg.Arena.Margin},
			Max: components.Vec2{X: cfg.Screen.Width - cfg.Arena.Margin, Y: cfg.Screen.Height - cfg.Arena.Margin},
		}

		for i := 0; i < 600; i++ {
			ps.Update(config.TimeStep)
			if !interior.ContainsBody(ctx.World.Player.Body) {
				t.Fatalf("input %+v: player left the arena at tick %d: %+v", in, i, ctx.World.Player.Body)
			}
		}
	}
}

func TestPlayerClampedOnWall(t *testing.T) {
	ctx := newTestContext(config.DefaultArenaConfig())
	ctx.Input = world.InputState{Left: true}
	ps := NewPlayerSystem(ctx)

	for i := 0; i < 300; i++ {
		ps.Update(config.TimeStep)
	}

	body := ctx.World.Player.Body
	if body.Min().X != 20 {
		t.Errorf("expected player flush with left wall at x=20, got %v", body.Min().X)
	}
	if body.Vel.X != 0 {
		t.Errorf("expected horizontal velocity zeroed by the wall, got %v", body.Vel.X)
	}
}

func TestPlayerSlidesAlongWall(t *testing.T) {
	ctx := newTestContext(config.DefaultArenaConfig())
	ps := NewPlayerSystem(ctx)

	ctx.Input = world.InputState{Left: true}
	for i := 0; i < 300; i++ {
		ps.Update(config.TimeStep)
	}
	before := ctx.World.Player.Body.Pos

	ctx.Input = world.InputState{Left: true, Down: true}
	ps.Update(config.TimeStep)
	after := ctx.World.Player.Body

	if after.Pos.X != before.X {
		t.Errorf("x should stay pinned to the wall, %v -> %v", before.X, after.Pos.X)
	}
	wantDY := 220 / math.Sqrt2 * config.TimeStep
	if math.Abs(after.Pos.Y-before.Y-wantDY) > 1e-9 {
		t.Errorf("expected to slide down by %.4f, got %.4f", wantDY, after.Pos.Y-before.Y)
	}
	if after.Vel.Y <= 0 {
		t.Errorf("vertical velocity should survive the clamp, got %v", after.Vel.Y)
	}
}

func TestPlayerUpdateWithoutPlayer(t *testing.T) {
	ctx := world.NewContext(config.DefaultArenaConfig(), testSprites(), 1)
	ctx.Input = world.InputState{Right: true}
	NewPlayerSystem(ctx).Update(config.TimeStep)

	if ctx.World.HasPlayer {
		t.Error("update must not create a player")
	}
}
