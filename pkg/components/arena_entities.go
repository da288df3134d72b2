package components

// WallEdge 标识墙体所在的竞技场边
type WallEdge int

const (
	WallTop WallEdge = iota
	WallBottom
	WallLeft
	WallRight
)

func (e WallEdge) String() string {
	switch e {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "unknown"
}

// Wall 静态边界墙
type Wall struct {
	Edge WallEdge
	Body Body
}

// Player 玩家控制的碰撞体，每局恰好一个
type Player struct {
	Body Body
}

// Particle 带电粒子
type Particle struct {
	Body   Body
	Charge Charge
}

// Camera 2D 摄像机，启动时创建，不属于任何一局，结束一局时不会被清理
type Camera struct {
	Center Vec2
}
