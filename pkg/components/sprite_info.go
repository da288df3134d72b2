package components

// Sprite 一张贴图的逻辑句柄及其缩放后的像素尺寸
// Handle 是资源路径（如 "assets/sprites/player.png"），由宿主引擎映射为实际图像
type Sprite struct {
	Handle string
	Size   Vec2
}

// SpriteInfo 实体类型到贴图的只读映射，启动时加载一次
//
// Player 和 Particle 的尺寸决定对应碰撞体的大小，保证碰撞与画面一致。
// Electron 是吸引型粒子的贴图，碰撞体仍使用 Particle 的尺寸。
type SpriteInfo struct {
	Player     Sprite
	Particle   Sprite
	Electron   Sprite
	Background Sprite
}

// ParticleSprite 返回指定电荷粒子应使用的贴图
func (s SpriteInfo) ParticleSprite(c Charge) Sprite {
	if c == ChargeAttract && s.Electron.Handle != "" {
		return s.Electron
	}
	return s.Particle
}
