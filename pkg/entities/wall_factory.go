package entities

import (
	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
)

// InteriorRect 返回竞技场内部矩形：屏幕四周各留出 Margin
func InteriorRect(cfg config.ArenaConfig) components.Rect {
	m := cfg.Arena.Margin
	return components.Rect{
		Min: components.Vec2{X: m, Y: m},
		Max: components.Vec2{X: cfg.Screen.Width - m, Y: cfg.Screen.Height - m},
	}
}

// SpawnWalls 创建四面边界墙，顺序为上、下、左、右
//
// 每面墙的内侧边恰好落在内部矩形的边上，墙体本身完全位于内部矩形之外。
// 左右墙包含四个角，上下墙横跨整个外框宽度，保证角落没有缝隙。
func SpawnWalls(cfg config.ArenaConfig) [4]components.Wall {
	in := InteriorRect(cfg)
	t := cfg.Arena.WallThickness
	outerW := in.Width() + 2*t
	outerH := in.Height() + 2*t
	cx, cy := in.Center().X, in.Center().Y

	return [4]components.Wall{
		{
			Edge: components.WallTop,
			Body: components.NewBody(components.Vec2{X: cx, Y: in.Min.Y - t/2}, components.Vec2{X: outerW, Y: t}),
		},
		{
			Edge: components.WallBottom,
			Body: components.NewBody(components.Vec2{X: cx, Y: in.Max.Y + t/2}, components.Vec2{X: outerW, Y: t}),
		},
		{
			Edge: components.WallLeft,
			Body: components.NewBody(components.Vec2{X: in.Min.X - t/2, Y: cy}, components.Vec2{X: t, Y: outerH}),
		},
		{
			Edge: components.WallRight,
			Body: components.NewBody(components.Vec2{X: in.Max.X + t/2, Y: cy}, components.Vec2{X: t, Y: outerH}),
		},
	}
}
