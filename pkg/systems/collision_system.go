package systems

import (
	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/physics"
	"github.com/decker502/dualcharge/pkg/world"
)

// Contacts 一个 tick 内玩家与粒子的接触结果
type Contacts struct {
	// Consumable 与玩家重叠的非致命粒子（按槽位顺序）
	Consumable []ecs.EntityID
	// Lethal 与玩家重叠的致命粒子
	Lethal []ecs.EntityID
}

// CollisionSystem 玩家与粒子的碰撞检测
// 只做检测，不修改任何实体；响应由 ParticleSystem 和状态机完成
type CollisionSystem struct {
	ctx *world.Context

	lethalCharge  components.Charge
	lethalEnabled bool
}

// NewCollisionSystem 创建碰撞系统
// 致命电荷规则在创建时从配置解析一次，配置已在加载时校验过
func NewCollisionSystem(ctx *world.Context) *CollisionSystem {
	charge, enabled, _ := ctx.Config.LethalRule()
	return &CollisionSystem{
		ctx:           ctx,
		lethalCharge:  charge,
		lethalEnabled: enabled,
	}
}

// IsLethal 报告该电荷的粒子碰到玩家是否导致失败
func (s *CollisionSystem) IsLethal(c components.Charge) bool {
	return s.lethalEnabled && c == s.lethalCharge
}

// Detect 找出所有与玩家重叠的粒子
// 每个粒子至多出现一次，与穿透的轴无关
func (s *CollisionSystem) Detect() Contacts {
	var contacts Contacts
	w := s.ctx.World
	if !w.HasPlayer {
		return contacts
	}

	player := w.Player.Body
	w.Particles.Each(func(id ecs.EntityID, p *components.Particle) {
		if !physics.Intersects(player, p.Body) {
			return
		}
		if s.IsLethal(p.Charge) {
			contacts.Lethal = append(contacts.Lethal, id)
		} else {
			contacts.Consumable = append(contacts.Consumable, id)
		}
	})
	return contacts
}
