package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/decker502/dualcharge/pkg/components"
	"gopkg.in/yaml.v3"
)

// ArenaConfig 竞技场调参配置
//
// 配置文件位置: data/arena.yaml
// 所有长度单位为像素，速度为像素/秒，加速度为像素/秒²。
type ArenaConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     WallConfig      `yaml:"arena"`
	Scale     float64         `yaml:"scale"`
	Sprites   SpriteFiles     `yaml:"sprites"`
	Player    PlayerConfig    `yaml:"player"`
	Particles ParticlesConfig `yaml:"particles"`
	Rules     RulesConfig     `yaml:"rules"`
}

// ScreenConfig 屏幕尺寸
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WallConfig 边界墙配置
type WallConfig struct {
	// Margin 竞技场内部矩形到屏幕边缘的距离
	Margin float64 `yaml:"margin"`
	// WallThickness 墙体厚度，必须大于任何实体单帧最大位移
	WallThickness float64 `yaml:"wallThickness"`
}

// SpriteFiles 贴图文件名（相对于 SpriteDir）
type SpriteFiles struct {
	Player     string `yaml:"player"`
	Particle   string `yaml:"particle"`
	Electron   string `yaml:"electron"`
	Background string `yaml:"background"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
}

// ParticlesConfig 粒子参数
type ParticlesConfig struct {
	Initial         int     `yaml:"initial"`         // 每局开始时生成的粒子数
	Min             int     `yaml:"min"`             // 场上最少粒子数，被吃掉后补足
	AttractRatio    float64 `yaml:"attractRatio"`    // 生成吸引型粒子的概率 [0, 1]
	InitialSpeed    float64 `yaml:"initialSpeed"`    // 生成时的初速度大小
	MaxSpeed        float64 `yaml:"maxSpeed"`        // 速度上限
	ChargeAccel     float64 `yaml:"chargeAccel"`     // 电荷作用加速度
	Reward          int     `yaml:"reward"`          // 每吃掉一个粒子的得分
	SpawnRetries    int     `yaml:"spawnRetries"`    // 放置重试上限
	SpawnSafeRadius float64 `yaml:"spawnSafeRadius"` // 玩家周围的禁止生成距离
}

// RulesConfig 失败条件
type RulesConfig struct {
	// LethalCharge 碰到即失败的粒子电荷: "attract"、"repel" 或 "none"
	LethalCharge string `yaml:"lethalCharge"`
	// TimeLimit 每局时长（秒），0 表示不限时
	TimeLimit float64 `yaml:"timeLimit"`
}

// DefaultArenaConfig 返回与 data/arena.yaml 一致的默认配置
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Screen: ScreenConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Arena:  WallConfig{Margin: 20, WallThickness: 20},
		Scale:  SpriteScale,
		Sprites: SpriteFiles{
			Player:     PlayerSprite,
			Particle:   PositronSprite,
			Electron:   ElectronSprite,
			Background: BackgroundSprite,
		},
		Player: PlayerConfig{Speed: 220},
		Particles: ParticlesConfig{
			Initial:         8,
			Min:             8,
			AttractRatio:    0.35,
			InitialSpeed:    60,
			MaxSpeed:        180,
			ChargeAccel:     140,
			Reward:          10,
			SpawnRetries:    32,
			SpawnSafeRadius: 80,
		},
		Rules: RulesConfig{LethalCharge: "attract", TimeLimit: 0},
	}
}

// LoadArenaConfig 从 YAML 文件加载竞技场配置
//
// 文件中缺省的字段使用 DefaultArenaConfig 的值。
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	return ParseArenaConfig(data)
}

// LoadArenaConfigFS 从文件系统（如嵌入资源）加载竞技场配置
func LoadArenaConfigFS(fsys fs.FS, name string) (*ArenaConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	return ParseArenaConfig(data)
}

// ParseArenaConfig 解析 YAML 数据并校验
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	config := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置有效性
func (c *ArenaConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.1fx%.1f", c.Screen.Width, c.Screen.Height)
	}
	if c.Arena.Margin < 0 {
		return fmt.Errorf("arena.margin must be >= 0, got %.1f", c.Arena.Margin)
	}
	if c.Arena.WallThickness <= 0 {
		return fmt.Errorf("arena.wallThickness must be positive, got %.1f", c.Arena.WallThickness)
	}
	if c.InteriorWidth() <= 0 || c.InteriorHeight() <= 0 {
		return fmt.Errorf("arena.margin %.1f leaves no interior on a %.1fx%.1f screen",
			c.Arena.Margin, c.Screen.Width, c.Screen.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %.3f", c.Scale)
	}

	// 贴图文件名
	for name, file := range map[string]string{
		"player":     c.Sprites.Player,
		"particle":   c.Sprites.Particle,
		"electron":   c.Sprites.Electron,
		"background": c.Sprites.Background,
	} {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("sprites.%s cannot be empty", name)
		}
	}

	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %.1f", c.Player.Speed)
	}

	p := c.Particles
	if p.Initial < 0 {
		return fmt.Errorf("particles.initial must be >= 0, got %d", p.Initial)
	}
	if p.Min < 0 || p.Min > p.Initial {
		return fmt.Errorf("particles.min must be between 0 and particles.initial (%d), got %d", p.Initial, p.Min)
	}
	if p.AttractRatio < 0 || p.AttractRatio > 1 {
		return fmt.Errorf("particles.attractRatio must be between 0 and 1, got %.2f", p.AttractRatio)
	}
	if p.InitialSpeed < 0 {
		return fmt.Errorf("particles.initialSpeed must be >= 0, got %.1f", p.InitialSpeed)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("particles.maxSpeed must be positive, got %.1f", p.MaxSpeed)
	}
	if p.ChargeAccel < 0 {
		return fmt.Errorf("particles.chargeAccel must be >= 0, got %.1f", p.ChargeAccel)
	}
	if p.Reward < 0 {
		return fmt.Errorf("particles.reward must be >= 0, got %d", p.Reward)
	}
	if p.SpawnRetries < 1 {
		return fmt.Errorf("particles.spawnRetries must be >= 1, got %d", p.SpawnRetries)
	}
	if p.SpawnSafeRadius < 0 {
		return fmt.Errorf("particles.spawnSafeRadius must be >= 0, got %.1f", p.SpawnSafeRadius)
	}

	// 墙体必须厚于单帧最大位移，否则高速实体可能穿墙
	maxStep := max(c.Player.Speed, p.MaxSpeed) * TimeStep
	if c.Arena.WallThickness <= maxStep {
		return fmt.Errorf("arena.wallThickness %.1f must exceed the per-tick travel %.2f", c.Arena.WallThickness, maxStep)
	}

	if _, _, err := c.LethalRule(); err != nil {
		return err
	}
	if c.Rules.TimeLimit < 0 {
		return fmt.Errorf("rules.timeLimit must be >= 0, got %.1f", c.Rules.TimeLimit)
	}

	return nil
}

// LethalRule 解析致命粒子规则
// 返回值 enabled 为 false 时表示没有致命粒子
func (c *ArenaConfig) LethalRule() (charge components.Charge, enabled bool, err error) {
	s := strings.ToLower(strings.TrimSpace(c.Rules.LethalCharge))
	if s == "" || s == "none" {
		return 0, false, nil
	}
	charge, err = components.ParseCharge(s)
	if err != nil {
		return 0, false, fmt.Errorf("rules.lethalCharge: %w", err)
	}
	return charge, true, nil
}

// InteriorWidth 返回竞技场内部宽度
func (c *ArenaConfig) InteriorWidth() float64 {
	return c.Screen.Width - 2*c.Arena.Margin
}

// InteriorHeight 返回竞技场内部高度
func (c *ArenaConfig) InteriorHeight() float64 {
	return c.Screen.Height - 2*c.Arena.Margin
}
