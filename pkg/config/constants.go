package config

// 窗口与模拟常量
// 这些值在编译期固定，YAML 调参文件只覆盖玩法数值
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 600

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 500

	// WindowTitle 窗口标题
	WindowTitle = "Global game jam 2022"

	// TicksPerSecond 模拟频率
	TicksPerSecond = 60

	// TimeStep 固定模拟步长（秒）
	TimeStep = 1.0 / TicksPerSecond

	// SpriteScale 贴图缩放因子，同时作用于碰撞体尺寸
	SpriteScale = 0.5

	// SpriteDir 贴图目录（嵌入资源路径）
	SpriteDir = "assets/sprites"

	// DefaultArenaConfigPath 默认调参文件路径（嵌入资源路径）
	DefaultArenaConfigPath = "data/arena.yaml"
)

// 贴图文件名
// 背景图沿用原始资源包中的文件名 backgound.png
const (
	PlayerSprite     = "player.png"
	PositronSprite   = "positron.png"
	ElectronSprite   = "electron.png"
	BackgroundSprite = "backgound.png"
)
