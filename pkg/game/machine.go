// Package game 驱动模拟：固定步长的 tick 循环和 Playing/GameOver 状态机
package game

import (
	"log"

	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/entities"
	"github.com/decker502/dualcharge/pkg/systems"
	"github.com/decker502/dualcharge/pkg/world"
)

// stateHandlers 某个状态在三个阶段的处理函数
// update 返回下一个状态，返回当前状态表示不切换
type stateHandlers struct {
	enter  func()
	update func(deltaTime float64) world.GameState
	exit   func()
}

// Machine 游戏状态机
//
// 每个 tick 的固定顺序：
//  1. 读取输入（由宿主写入）
//  2. 玩家更新
//  3. 粒子更新
//  4. 碰撞检测
//  5. 碰撞响应（吞噬、计分、补充粒子）
//  6. 检查状态切换，需要时执行 exit/enter
//
// 每个 tick 至多切换一次状态。
type Machine struct {
	ctx       *world.Context
	presenter Presenter

	playerSystem    *systems.PlayerSystem
	particleSystem  *systems.ParticleSystem
	collisionSystem *systems.CollisionSystem

	handlers map[world.GameState]stateHandlers

	// lastScore 上次通知展示方的分数
	lastScore int
}

// NewMachine 创建状态机并进入初始状态 Playing
// presenter 为 nil 时使用 NopPresenter
func NewMachine(ctx *world.Context, presenter Presenter) *Machine {
	if presenter == nil {
		presenter = NopPresenter{}
	}

	m := &Machine{
		ctx:             ctx,
		presenter:       presenter,
		playerSystem:    systems.NewPlayerSystem(ctx),
		particleSystem:  systems.NewParticleSystem(ctx),
		collisionSystem: systems.NewCollisionSystem(ctx),
	}
	m.handlers = map[world.GameState]stateHandlers{
		world.StatePlaying: {
			enter:  m.enterPlaying,
			update: m.updatePlaying,
			exit:   m.exitPlaying,
		},
		world.StateGameOver: {
			enter:  m.enterGameOver,
			update: m.updateGameOver,
			exit:   m.exitGameOver,
		},
	}

	ctx.State = world.StatePlaying
	m.handlers[world.StatePlaying].enter()
	m.presenter.StateChanged(world.StatePlaying)
	return m
}

// Context 返回模拟上下文（宿主绘制时只读访问）
func (m *Machine) Context() *world.Context {
	return m.ctx
}

// State 返回当前状态
func (m *Machine) State() world.GameState {
	return m.ctx.State
}

// Tick 以固定步长推进一个 tick
func (m *Machine) Tick(in world.InputState) {
	m.ctx.Input = in
	m.ctx.Tick++

	current := m.ctx.State
	next := m.handlers[current].update(config.TimeStep)
	if next != current {
		m.transition(next)
	}
}

// Restart 从 GameOver 重新开始一局
// Playing 期间调用无效，返回 false
func (m *Machine) Restart() bool {
	if m.ctx.State != world.StateGameOver {
		return false
	}
	m.transition(world.StatePlaying)
	return true
}

func (m *Machine) transition(next world.GameState) {
	prev := m.ctx.State
	m.handlers[prev].exit()
	m.ctx.State = next
	m.handlers[next].enter()

	log.Printf("[Machine] %s -> %s (tick %d)", prev, next, m.ctx.Tick)
	m.presenter.StateChanged(next)
}

// enterPlaying 开始新的一局
// 总是先清理，因此重复调用是幂等的
func (m *Machine) enterPlaying() {
	ctx := m.ctx
	w := ctx.World

	w.Teardown()

	w.Walls = entities.SpawnWalls(ctx.Config)
	w.WallsSpawned = true
	w.Player = entities.NewPlayer(ctx.Config, ctx.Sprites)
	w.HasPlayer = true
	m.particleSystem.SpawnInitial()

	ctx.Score.Reset()
	ctx.Elapsed = 0
	ctx.LethalHit = false

	m.lastScore = 0
	m.presenter.ScoreChanged(0)
	log.Printf("[Machine] session started with %d entities", w.EntityCount())
}

func (m *Machine) updatePlaying(deltaTime float64) world.GameState {
	ctx := m.ctx

	m.playerSystem.Update(deltaTime)
	m.particleSystem.Update(deltaTime)

	contacts := m.collisionSystem.Detect()
	m.particleSystem.Consume(contacts.Consumable)
	m.particleSystem.Flush()
	m.particleSystem.Replenish()

	ctx.Elapsed += deltaTime
	ctx.LethalHit = len(contacts.Lethal) > 0

	if score := ctx.Score.Value(); score != m.lastScore {
		m.lastScore = score
		m.presenter.ScoreChanged(score)
	}

	if ctx.LethalHit {
		log.Printf("[Machine] player touched a lethal particle")
		return world.StateGameOver
	}
	if limit := ctx.Config.Rules.TimeLimit; limit > 0 && ctx.Elapsed >= limit {
		log.Printf("[Machine] time limit %.1fs reached", limit)
		return world.StateGameOver
	}
	return world.StatePlaying
}

// exitPlaying 清理本局所有实体，摄像机保留
func (m *Machine) exitPlaying() {
	m.ctx.World.Teardown()
}

func (m *Machine) enterGameOver() {
	log.Printf("[Machine] game over, final score %d after %.1fs", m.ctx.Score.Value(), m.ctx.Elapsed)
}

func (m *Machine) updateGameOver(float64) world.GameState {
	if m.ctx.Input.Restart {
		return world.StatePlaying
	}
	return world.StateGameOver
}

func (m *Machine) exitGameOver() {}
