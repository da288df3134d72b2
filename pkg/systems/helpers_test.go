package systems

import (
	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/entities"
	"github.com/decker502/dualcharge/pkg/world"
)

// testSprites 测试用贴图尺寸：玩家 32x32，粒子 24x24
func testSprites() components.SpriteInfo {
	return components.SpriteInfo{
		Player:   components.Sprite{Handle: "player", Size: components.Vec2{X: 32, Y: 32}},
		Particle: components.Sprite{Handle: "positron", Size: components.Vec2{X: 24, Y: 24}},
		Electron: components.Sprite{Handle: "electron", Size: components.Vec2{X: 24, Y: 24}},
	}
}

// newTestContext 创建已放置墙体和玩家、没有粒子的上下文
func newTestContext(cfg config.ArenaConfig) *world.Context {
	sprites := testSprites()
	ctx := world.NewContext(cfg, sprites, 1)
	ctx.World.Walls = entities.SpawnWalls(cfg)
	ctx.World.WallsSpawned = true
	ctx.World.Player = entities.NewPlayer(cfg, sprites)
	ctx.World.HasPlayer = true
	return ctx
}

// spawnParticle 在指定位置放置一个粒子
func spawnParticle(ctx *world.Context, pos, vel components.Vec2, charge components.Charge) ecs.EntityID {
	body := components.NewBody(pos, ctx.Sprites.Particle.Size)
	body.Vel = vel
	return ctx.World.Particles.Spawn(components.Particle{Body: body, Charge: charge})
}
