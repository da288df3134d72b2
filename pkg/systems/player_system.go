package systems

import (
	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/physics"
	"github.com/decker502/dualcharge/pkg/world"
)

// PlayerSystem 玩家移动系统
// 职责：
// - 根据按键状态计算玩家速度
// - 推进玩家位置
// - 把玩家限制在竞技场内部（贴墙滑动，不反弹）
type PlayerSystem struct {
	ctx *world.Context
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(ctx *world.Context) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

// VelocityFromInput 根据按住的方向键计算速度
//
// 相反方向互相抵消；斜向移动先归一化再乘以 speed，因此斜向速度大小与单轴一致。
// 没有按键时返回零向量。
func VelocityFromInput(in world.InputState, speed float64) components.Vec2 {
	var dir components.Vec2
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}
	if in.Up {
		dir.Y--
	}
	if in.Down {
		dir.Y++
	}
	return dir.Normalized().Scale(speed)
}

// Update 更新玩家
// 参数:
//   - deltaTime: 固定时间步长（秒）
func (s *PlayerSystem) Update(deltaTime float64) {
	w := s.ctx.World
	if !w.HasPlayer {
		return
	}

	body := &w.Player.Body
	body.Vel = VelocityFromInput(s.ctx.Input, s.ctx.Config.Player.Speed)
	body.Integrate(deltaTime)

	if w.WallsSpawned {
		ClampToWalls(body, w.Walls)
	}
}

// ClampToWalls 把碰撞体推出所有与之重叠的墙
// 只修正被穿透的那个轴，并把该轴速度清零；另一轴保持不变，实现贴墙滑动
func ClampToWalls(body *components.Body, walls [4]components.Wall) {
	for _, wall := range walls {
		side := physics.Overlap(*body, wall.Body)
		if side == physics.SideNone {
			continue
		}
		body.Pos = physics.PushOut(*body, wall.Body, side)
		if side.Horizontal() {
			body.Vel.X = 0
		} else {
			body.Vel.Y = 0
		}
	}
}
