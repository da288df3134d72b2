// Package physics 提供轴对齐包围盒（AABB）碰撞几何
//
// 坐标系与屏幕一致：X 向右，Y 向下，"Top" 指 Y 较小的一侧。
// 所有函数均为纯函数，不分配内存，也不修改入参。
package physics

import "github.com/decker502/dualcharge/pkg/components"

// Side 表示被穿透的一侧
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// Opposite 返回对侧；SideNone 的对侧仍是 SideNone
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	}
	return SideNone
}

// Horizontal 报告该侧是否位于水平轴（左/右）
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Normal 返回该侧的外法线（单位向量）
func (s Side) Normal() components.Vec2 {
	switch s {
	case SideLeft:
		return components.Vec2{X: -1}
	case SideRight:
		return components.Vec2{X: 1}
	case SideTop:
		return components.Vec2{Y: -1}
	case SideBottom:
		return components.Vec2{Y: 1}
	}
	return components.Vec2{}
}

// Contact 一次碰撞检测的结果
// Side 是 b 被 a 穿透的一侧，Depth 是沿该侧法线把 a 推出 b 所需的距离
type Contact struct {
	Side  Side
	Depth float64
}

// Intersects 检查两个碰撞体是否重叠（开区间，边缘相接不算重叠）
// 对称：Intersects(a, b) == Intersects(b, a)
func Intersects(a, b components.Body) bool {
	return abs(a.Pos.X-b.Pos.X) < a.Half.X+b.Half.X &&
		abs(a.Pos.Y-b.Pos.Y) < a.Half.Y+b.Half.Y
}

// Collide 计算 a 相对于 b 的碰撞信息
//
// 四个推出距离分别为：
//
//	Left   = a.maxX - b.minX   （a 从左侧进入 b）
//	Right  = b.maxX - a.minX
//	Top    = a.maxY - b.minY
//	Bottom = b.maxY - a.minY
//
// 取最小者作为碰撞法线。相等时按固定顺序 Left、Right、Top、Bottom 取第一个，
// 即水平方向优先，结果对同一输入总是确定的。
func Collide(a, b components.Body) Contact {
	if !Intersects(a, b) {
		return Contact{}
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	best := Contact{Side: SideLeft, Depth: aMax.X - bMin.X}
	candidates := [...]Contact{
		{Side: SideRight, Depth: bMax.X - aMin.X},
		{Side: SideTop, Depth: aMax.Y - bMin.Y},
		{Side: SideBottom, Depth: bMax.Y - aMin.Y},
	}
	for _, c := range candidates {
		if c.Depth < best.Depth {
			best = c
		}
	}
	return best
}

// Overlap 返回 b 被 a 穿透的一侧，不重叠时返回 SideNone
func Overlap(a, b components.Body) Side {
	return Collide(a, b).Side
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// PushOut 返回把 a 沿 side 推到 b 外侧边缘后 a 的中心位置
// side 通常来自 Overlap(a, b)；SideNone 时原样返回 a.Pos
func PushOut(a, b components.Body, side Side) components.Vec2 {
	pos := a.Pos
	switch side {
	case SideLeft:
		pos.X = b.Min().X - a.Half.X
	case SideRight:
		pos.X = b.Max().X + a.Half.X
	case SideTop:
		pos.Y = b.Min().Y - a.Half.Y
	case SideBottom:
		pos.Y = b.Max().Y + a.Half.Y
	}
	return pos
}
