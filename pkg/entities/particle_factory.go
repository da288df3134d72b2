package entities

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/physics"
)

// Placement 描述一次粒子放置的结果
type Placement struct {
	Pos      components.Vec2
	Attempts int  // 实际尝试次数
	Accepted bool // false 表示重试耗尽后强制接受了最后一个候选位置
}

// PlaceParticle 在内部矩形中随机选择粒子中心点
//
// 候选位置保证粒子碰撞体完全位于内部矩形内；与 avoid 重叠的候选会被拒绝并重试，
// 最多 retries 次。重试耗尽时接受最后一个候选位置，这是可接受的近似：
// 玩家占据大部分场地时宁可生成在附近，也不阻塞模拟。
func PlaceParticle(rng *rand.Rand, interior components.Rect, size components.Vec2, avoid components.Body, retries int) Placement {
	half := size.Scale(0.5)
	var candidate components.Vec2
	for attempt := 1; attempt <= retries; attempt++ {
		candidate = components.Vec2{
			X: randRange(rng, interior.Min.X+half.X, interior.Max.X-half.X),
			Y: randRange(rng, interior.Min.Y+half.Y, interior.Max.Y-half.Y),
		}
		body := components.Body{Pos: candidate, Half: half}
		if !physics.Intersects(body, avoid) {
			return Placement{Pos: candidate, Attempts: attempt, Accepted: true}
		}
	}
	return Placement{Pos: candidate, Attempts: retries, Accepted: false}
}

// NewParticle 按生成策略创建一个粒子
//
// avoid 是玩家碰撞体（开局时在出生点，补充时在当前位置），
// 拒绝区域为玩家碰撞体向外扩展 SpawnSafeRadius。
func NewParticle(rng *rand.Rand, cfg config.ArenaConfig, sprites components.SpriteInfo, avoid components.Body) components.Particle {
	pc := cfg.Particles
	size := sprites.Particle.Size

	placement := PlaceParticle(rng, InteriorRect(cfg), size, avoid.Grow(pc.SpawnSafeRadius), pc.SpawnRetries)
	if !placement.Accepted {
		log.Printf("[ParticleFactory] spawn retries exhausted after %d attempts, accepting (%.1f, %.1f)",
			placement.Attempts, placement.Pos.X, placement.Pos.Y)
	}

	charge := components.ChargeRepel
	if rng.Float64() < pc.AttractRatio {
		charge = components.ChargeAttract
	}

	angle := rng.Float64() * 2 * math.Pi
	body := components.NewBody(placement.Pos, size)
	body.Vel = components.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(pc.InitialSpeed)

	return components.Particle{Body: body, Charge: charge}
}

// randRange 返回 [lo, hi) 内的均匀随机数；区间为空时返回中点
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
