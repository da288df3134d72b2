package game

import (
	"testing"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/world"
)

// recordingPresenter 记录所有通知
type recordingPresenter struct {
	scores []int
	states []world.GameState
}

func (r *recordingPresenter) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recordingPresenter) StateChanged(state world.GameState) {
	r.states = append(r.states, state)
}

func testSprites() components.SpriteInfo {
	return components.SpriteInfo{
		Player:   components.Sprite{Handle: "player", Size: components.Vec2{X: 32, Y: 32}},
		Particle: components.Sprite{Handle: "positron", Size: components.Vec2{X: 24, Y: 24}},
		Electron: components.Sprite{Handle: "electron", Size: components.Vec2{X: 24, Y: 24}},
	}
}

func newTestMachine(cfg config.ArenaConfig) (*Machine, *recordingPresenter) {
	rec := &recordingPresenter{}
	ctx := world.NewContext(cfg, testSprites(), 42)
	return NewMachine(ctx, rec), rec
}

// placeOnPlayer 在玩家中心放置一个静止粒子
func placeOnPlayer(m *Machine, charge components.Charge) {
	w := m.ctx.World
	body := components.NewBody(w.Player.Body.Pos, m.ctx.Sprites.Particle.Size)
	w.Particles.Spawn(components.Particle{Body: body, Charge: charge})
}

func noLethalConfig() config.ArenaConfig {
	cfg := config.DefaultArenaConfig()
	cfg.Rules.LethalCharge = "none"
	return cfg
}

func TestNewMachineStartsPlaying(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	m, rec := newTestMachine(cfg)

	if m.State() != world.StatePlaying {
		t.Fatalf("expected initial state Playing, got %v", m.State())
	}
	w := m.ctx.World
	if !w.WallsSpawned || !w.HasPlayer {
		t.Fatal("walls and player must exist after entering Playing")
	}
	if got, want := w.EntityCount(), 4+1+cfg.Particles.Initial; got != want {
		t.Errorf("expected %d entities, got %d", want, got)
	}
	if w.Player.Body.Pos != (components.Vec2{X: 300, Y: 250}) {
		t.Errorf("player should spawn at interior center, got %+v", w.Player.Body.Pos)
	}
	if len(rec.states) != 1 || rec.states[0] != world.StatePlaying {
		t.Errorf("expected a single Playing notification, got %v", rec.states)
	}
	if len(rec.scores) != 1 || rec.scores[0] != 0 {
		t.Errorf("expected score reset notification, got %v", rec.scores)
	}
}

func TestEnterPlayingIsIdempotent(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	m, _ := newTestMachine(cfg)

	m.enterPlaying()
	m.enterPlaying()

	w := m.ctx.World
	if got, want := w.EntityCount(), 4+1+cfg.Particles.Initial; got != want {
		t.Errorf("repeated entry should not duplicate entities: expected %d, got %d", want, got)
	}
}

func TestLethalContactEndsSession(t *testing.T) {
	m, rec := newTestMachine(config.DefaultArenaConfig())
	camera := m.ctx.World.Camera

	placeOnPlayer(m, components.ChargeAttract)
	m.Tick(world.InputState{})

	if m.State() != world.StateGameOver {
		t.Fatalf("expected GameOver after lethal contact, got %v", m.State())
	}
	if n := m.ctx.World.EntityCount(); n != 0 {
		t.Errorf("expected all session entities torn down, %d remain", n)
	}
	if m.ctx.World.Camera != camera {
		t.Error("camera must survive teardown")
	}
	if m.ctx.Score.Value() != 0 {
		t.Errorf("lethal particle must not award score, got %d", m.ctx.Score.Value())
	}
	if last := rec.states[len(rec.states)-1]; last != world.StateGameOver {
		t.Errorf("presenter should be told about GameOver, got %v", last)
	}
}

func TestConsumeAwardsRewardAndReplenishes(t *testing.T) {
	cfg := noLethalConfig()
	m, rec := newTestMachine(cfg)

	placeOnPlayer(m, components.ChargeAttract)
	m.Tick(world.InputState{})

	if m.State() != world.StatePlaying {
		t.Fatalf("expected to keep playing, got %v", m.State())
	}
	if m.ctx.Score.Value() != cfg.Particles.Reward {
		t.Errorf("expected score %d, got %d", cfg.Particles.Reward, m.ctx.Score.Value())
	}
	if n := m.ctx.World.Particles.Len(); n < cfg.Particles.Min {
		t.Errorf("population %d dropped below minimum %d", n, cfg.Particles.Min)
	}
	if last := rec.scores[len(rec.scores)-1]; last != cfg.Particles.Reward {
		t.Errorf("presenter should see score %d, got %d", cfg.Particles.Reward, last)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	cfg := noLethalConfig()
	m, _ := newTestMachine(cfg)

	placeOnPlayer(m, components.ChargeRepel)
	m.Tick(world.InputState{})
	m.Tick(world.InputState{Restart: true})

	if m.State() != world.StatePlaying {
		t.Fatalf("expected Playing, got %v", m.State())
	}
	if m.ctx.Score.Value() != cfg.Particles.Reward {
		t.Errorf("restart during play must not reset score, got %d", m.ctx.Score.Value())
	}
	if m.Restart() {
		t.Error("Restart() should report false while playing")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	m, rec := newTestMachine(cfg)

	placeOnPlayer(m, components.ChargeAttract)
	m.Tick(world.InputState{})
	if m.State() != world.StateGameOver {
		t.Fatalf("setup: expected GameOver, got %v", m.State())
	}

	m.Tick(world.InputState{})
	if m.State() != world.StateGameOver {
		t.Fatal("GameOver must wait for the restart key")
	}

	m.Tick(world.InputState{Restart: true})

	w := m.ctx.World
	if m.State() != world.StatePlaying {
		t.Fatalf("expected Playing after restart, got %v", m.State())
	}
	if !w.HasPlayer {
		t.Error("expected exactly one player after restart")
	}
	if w.Particles.Len() != cfg.Particles.Initial {
		t.Errorf("expected %d particles after restart, got %d", cfg.Particles.Initial, w.Particles.Len())
	}
	if m.ctx.Score.Value() != 0 {
		t.Errorf("expected score 0 after restart, got %d", m.ctx.Score.Value())
	}
	if last := rec.scores[len(rec.scores)-1]; last != 0 {
		t.Errorf("presenter should see score reset, got %d", last)
	}
}

func TestRestartMethod(t *testing.T) {
	m, _ := newTestMachine(config.DefaultArenaConfig())
	placeOnPlayer(m, components.ChargeAttract)
	m.Tick(world.InputState{})

	if !m.Restart() {
		t.Fatal("Restart() should succeed from GameOver")
	}
	if m.State() != world.StatePlaying || m.ctx.World.EntityCount() == 0 {
		t.Errorf("expected a fresh session, state=%v entities=%d", m.State(), m.ctx.World.EntityCount())
	}
}

func TestAtMostOneTransitionPerTick(t *testing.T) {
	m, rec := newTestMachine(config.DefaultArenaConfig())
	before := len(rec.states)

	placeOnPlayer(m, components.ChargeAttract)
	m.Tick(world.InputState{Restart: true})

	if m.State() != world.StateGameOver {
		t.Errorf("expected GameOver, got %v", m.State())
	}
	if got := len(rec.states) - before; got != 1 {
		t.Errorf("expected exactly one transition, got %d", got)
	}
}

func TestTimeLimitEndsSession(t *testing.T) {
	cfg := noLethalConfig()
	cfg.Rules.TimeLimit = 1
	m, _ := newTestMachine(cfg)

	for i := 0; i < config.TicksPerSecond-1; i++ {
		m.Tick(world.InputState{})
	}
	if m.State() != world.StatePlaying {
		t.Fatalf("session ended early after %.3fs", m.ctx.Elapsed)
	}

	m.Tick(world.InputState{})
	m.Tick(world.InputState{})
	if m.State() != world.StateGameOver {
		t.Errorf("expected GameOver once the time limit passed, elapsed %.3fs", m.ctx.Elapsed)
	}
}

func TestPopulationNeverBelowMinimum(t *testing.T) {
	cfg := noLethalConfig()
	m, _ := newTestMachine(cfg)

	moves := []world.InputState{
		{Left: true}, {Up: true}, {Right: true}, {Down: true},
		{Left: true, Down: true}, {Right: true, Up: true},
	}
	for tick := 0; tick < 1800; tick++ {
		m.Tick(moves[(tick/90)%len(moves)])
		if n := m.ctx.World.Particles.Len(); n < cfg.Particles.Min {
			t.Fatalf("tick %d: population %d below minimum %d", tick, n, cfg.Particles.Min)
		}
	}
}

func TestSameSeedSameOutcome(t *testing.T) {
	cfg := noLethalConfig()
	run := func() (int, []components.Vec2) {
		m, _ := newTestMachine(cfg)
		for tick := 0; tick < 600; tick++ {
			m.Tick(world.InputState{Right: tick%120 < 60, Down: tick%200 < 100})
		}
		var positions []components.Vec2
		m.ctx.World.Particles.Each(func(_ ecs.EntityID, p *components.Particle) {
			positions = append(positions, p.Body.Pos)
		})
		return m.ctx.Score.Value(), positions
	}

	scoreA, posA := run()
	scoreB, posB := run()
	if scoreA != scoreB {
		t.Errorf("scores differ: %d vs %d", scoreA, scoreB)
	}
	if len(posA) != len(posB) {
		t.Fatalf("population differs: %d vs %d", len(posA), len(posB))
	}
	for i := range posA {
		if posA[i] != posB[i] {
			t.Errorf("particle %d differs: %+v vs %+v", i, posA[i], posB[i])
		}
	}
}
