package systems

import (
	"log"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/entities"
	"github.com/decker502/dualcharge/pkg/physics"
	"github.com/decker502/dualcharge/pkg/world"
)

// ParticleSystem 带电粒子系统
// 职责：
// - 开局生成初始粒子，被吃掉后补足到最小数量
// - 按电荷对玩家施加吸引/排斥加速度
// - 推进粒子位置并在墙上弹性反弹
// - 吞噬粒子并计分（分数的唯一写入方）
type ParticleSystem struct {
	ctx *world.Context
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(ctx *world.Context) *ParticleSystem {
	return &ParticleSystem{ctx: ctx}
}

// SpawnInitial 生成一局开始时的粒子
// 以玩家出生点为安全区参考点
func (s *ParticleSystem) SpawnInitial() {
	s.spawn(s.ctx.Config.Particles.Initial)
}

// Replenish 把场上粒子补足到最小数量
// 以玩家当前位置为安全区参考点
func (s *ParticleSystem) Replenish() int {
	missing := s.ctx.Config.Particles.Min - s.ctx.World.Particles.Len()
	if missing <= 0 {
		return 0
	}
	s.spawn(missing)
	return missing
}

func (s *ParticleSystem) spawn(n int) {
	w := s.ctx.World
	avoid := components.Body{Pos: entities.PlayerSpawnPoint(s.ctx.Config), Half: s.ctx.Sprites.Player.Size.Scale(0.5)}
	if w.HasPlayer {
		avoid = w.Player.Body
	}

	for i := 0; i < n; i++ {
		p := entities.NewParticle(s.ctx.Rand, s.ctx.Config, s.ctx.Sprites, avoid)
		w.Particles.Spawn(p)
	}
}

// Update 更新所有粒子
// 参数:
//   - deltaTime: 固定时间步长（秒）
func (s *ParticleSystem) Update(deltaTime float64) {
	w := s.ctx.World
	pc := s.ctx.Config.Particles

	w.Particles.Each(func(_ ecs.EntityID, p *components.Particle) {
		if w.HasPlayer {
			p.Body.Vel = p.Body.Vel.Add(ChargeAcceleration(*p, w.Player.Body.Pos, pc.ChargeAccel).Scale(deltaTime))
		}
		p.Body.Vel = p.Body.Vel.ClampLen(pc.MaxSpeed)
		p.Body.Integrate(deltaTime)

		if w.WallsSpawned {
			BounceOffWalls(&p.Body, w.Walls)
		}
	})
}

// ChargeAcceleration 计算粒子受到的电荷加速度
// 吸引型指向玩家，排斥型背离玩家，大小恒为 accel；粒子与玩家中心重合时为零
func ChargeAcceleration(p components.Particle, playerPos components.Vec2, accel float64) components.Vec2 {
	dir := playerPos.Sub(p.Body.Pos).Normalized()
	return dir.Scale(accel * p.Charge.Sign())
}

// BounceOffWalls 粒子与墙的弹性碰撞
// 速度沿墙面法线的分量被反射为指向竞技场内部，位置被夹回墙的内边缘
func BounceOffWalls(body *components.Body, walls [4]components.Wall) {
	for _, wall := range walls {
		side := physics.Overlap(*body, wall.Body)
		if side == physics.SideNone {
			continue
		}

		// 法线是墙被穿透一侧的外法线，也就是指向竞技场内部的方向
		n := side.Normal()
		if dot := body.Vel.X*n.X + body.Vel.Y*n.Y; dot < 0 {
			body.Vel = body.Vel.Sub(n.Scale(2 * dot))
		}
		body.Pos = physics.PushOut(*body, wall.Body, side)
	}
}

// Consume 吞噬粒子并计分
//
// 每个粒子只计一次分：已标记删除或已失效的句柄会被跳过。
// 删除是延迟的，调用方需要在之后调用 Flush。
// 返回本次新增的分数。
func (s *ParticleSystem) Consume(ids []ecs.EntityID) int {
	w := s.ctx.World
	gained := 0
	for _, id := range ids {
		if !w.Particles.Alive(id) || w.Particles.IsMarked(id) {
			continue
		}
		w.Particles.DestroyEntity(id)
		s.ctx.Score.Add(s.ctx.Config.Particles.Reward)
		gained += s.ctx.Config.Particles.Reward
	}
	return gained
}

// Flush 移除本 tick 标记删除的粒子
func (s *ParticleSystem) Flush() int {
	removed := s.ctx.World.Particles.RemoveMarkedEntities()
	if removed > 0 {
		log.Printf("[ParticleSystem] consumed %d particle(s), score=%d", removed, s.ctx.Score.Value())
	}
	return removed
}
