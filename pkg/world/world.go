// Package world 定义模拟上下文：当前一局的实体、分数、状态和只读资源
//
// 写入规则（单线程模拟，无需加锁）：
//   - Score 只由粒子系统的吞噬路径写入（Reset 仅在进入 Playing 时调用）
//   - State 只由 game.Machine 写入
//   - Walls/Player/Particles 由 game.Machine 在进入/退出 Playing 时整体创建和清理，
//     由各系统在 tick 内更新
package world

import (
	"math/rand"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/ecs"
)

// World 当前一局拥有的实体
type World struct {
	Walls        [4]components.Wall
	WallsSpawned bool

	Player    components.Player
	HasPlayer bool

	Particles *ecs.Arena[components.Particle]

	// Camera 在启动时创建，不属于任何一局
	Camera components.Camera
}

// NewWorld 创建空世界，摄像机对准屏幕中心
func NewWorld(cfg config.ArenaConfig) *World {
	return &World{
		Particles: ecs.NewArena[components.Particle](cfg.Particles.Initial * 2),
		Camera: components.Camera{
			Center: components.Vec2{X: cfg.Screen.Width / 2, Y: cfg.Screen.Height / 2},
		},
	}
}

// Teardown 清理一局的全部实体（摄像机除外）
func (w *World) Teardown() {
	w.Walls = [4]components.Wall{}
	w.WallsSpawned = false
	w.Player = components.Player{}
	w.HasPlayer = false
	w.Particles.Clear()
}

// EntityCount 返回一局实体总数（墙 + 玩家 + 粒子）
func (w *World) EntityCount() int {
	n := w.Particles.Len()
	if w.WallsSpawned {
		n += len(w.Walls)
	}
	if w.HasPlayer {
		n++
	}
	return n
}

// Context 模拟上下文，按引用传给每个系统的 Update
type Context struct {
	Config  config.ArenaConfig
	Sprites components.SpriteInfo
	World   *World
	Score   Score
	State   GameState
	Rand    *rand.Rand

	// Input 当前 tick 的按键状态，由宿主在 Tick 前写入
	Input InputState

	// Elapsed 本局已经过的模拟时间（秒）
	Elapsed float64
	// Tick 全局 tick 计数
	Tick uint64

	// LethalHit 本 tick 玩家是否碰到了致命粒子（由碰撞系统设置，状态机读取）
	LethalHit bool
}

// NewContext 创建模拟上下文
// seed 相同、输入序列相同时模拟结果完全一致
func NewContext(cfg config.ArenaConfig, sprites components.SpriteInfo, seed int64) *Context {
	return &Context{
		Config:  cfg,
		Sprites: sprites,
		World:   NewWorld(cfg),
		State:   StatePlaying,
		Rand:    rand.New(rand.NewSource(seed)),
	}
}
