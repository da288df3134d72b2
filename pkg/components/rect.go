package components

// Rect 轴对齐矩形（左上角 Min，右下角 Max）
type Rect struct {
	Min, Max Vec2
}

// Width 返回宽度
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height 返回高度
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center 返回中心点
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// ContainsBody 检查碰撞体是否完全位于矩形内（允许贴边）
func (r Rect) ContainsBody(b Body) bool {
	min, max := b.Min(), b.Max()
	return min.X >= r.Min.X && min.Y >= r.Min.Y && max.X <= r.Max.X && max.Y <= r.Max.Y
}
