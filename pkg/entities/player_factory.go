package entities

import (
	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
)

// PlayerSpawnPoint 返回玩家出生点（内部矩形中心）
func PlayerSpawnPoint(cfg config.ArenaConfig) components.Vec2 {
	return InteriorRect(cfg).Center()
}

// NewPlayer 在出生点创建静止的玩家
// 碰撞体尺寸取自玩家贴图（已按缩放因子换算）
func NewPlayer(cfg config.ArenaConfig, sprites components.SpriteInfo) components.Player {
	return components.Player{
		Body: components.NewBody(PlayerSpawnPoint(cfg), sprites.Player.Size),
	}
}
