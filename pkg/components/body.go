package components

import "fmt"

// Body 轴对齐矩形碰撞体
//
// Pos 为中心点坐标，Half 为半宽/半高，Vel 为速度（像素/秒，静态物体为零）。
// 不变量：Half.X > 0 且 Half.Y > 0。
type Body struct {
	Pos  Vec2
	Half Vec2
	Vel  Vec2
}

// NewBody 根据中心点和完整尺寸创建碰撞体
// size 的任一分量不为正时 panic（属于编程错误，配置在加载时已经校验过）
func NewBody(center, size Vec2) Body {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("components: body size must be positive, got (%.2f, %.2f)", size.X, size.Y))
	}
	return Body{Pos: center, Half: size.Scale(0.5)}
}

// Min 返回左上角坐标
func (b Body) Min() Vec2 {
	return b.Pos.Sub(b.Half)
}

// Max 返回右下角坐标
func (b Body) Max() Vec2 {
	return b.Pos.Add(b.Half)
}

// Size 返回完整尺寸
func (b Body) Size() Vec2 {
	return b.Half.Scale(2)
}

// Grow 返回各边向外扩展 margin 后的碰撞体（用于生成安全区）
func (b Body) Grow(margin float64) Body {
	return Body{Pos: b.Pos, Half: Vec2{X: b.Half.X + margin, Y: b.Half.Y + margin}, Vel: b.Vel}
}

// Integrate 按速度推进位置: Pos += Vel * dt
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
