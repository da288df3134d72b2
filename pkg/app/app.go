// Package app 提供 Ebitengine 宿主：窗口、键盘输入、贴图绘制和 HUD
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/dualcharge/pkg/assets"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/embedded"
	"github.com/decker502/dualcharge/pkg/game"
	"github.com/decker502/dualcharge/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Arena 竞技场配置，为 nil 时从嵌入的 data/arena.yaml 加载
	Arena *config.ArenaConfig
	// Seed 随机种子，相同种子和输入得到相同的一局
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	machine   *game.Machine
	resources *ResourceManager
	hud       *HUD
	verbose   bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何资源缺失都会返回错误，此时不会运行任何一个 tick。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	arenaConfig := cfg.Arena
	if arenaConfig == nil {
		loaded, err := config.LoadArenaConfigFS(embedded.FS(), config.DefaultArenaConfigPath)
		if err != nil {
			return nil, fmt.Errorf("竞技场配置加载失败: %w", err)
		}
		arenaConfig = loaded
	}

	sprites, err := assets.LoadSpriteInfo(embedded.FS(), config.SpriteDir, arenaConfig.Sprites, arenaConfig.Scale)
	if err != nil {
		return nil, fmt.Errorf("贴图元数据加载失败: %w", err)
	}

	// 创建资源管理器并预加载全部贴图
	resources := NewResourceManager()
	for _, handle := range []string{sprites.Player.Handle, sprites.Particle.Handle, sprites.Electron.Handle, sprites.Background.Handle} {
		if _, err := resources.LoadImage(handle); err != nil {
			return nil, fmt.Errorf("贴图加载失败: %w", err)
		}
	}
	log.Printf("[App] loaded %d sprite images", resources.ImageCount())

	hud := NewHUD()
	ctx := world.NewContext(*arenaConfig, sprites, cfg.Seed)
	machine := game.NewMachine(ctx, game.MultiPresenter{hud, game.LogPresenter{}})

	return &App{
		machine:   machine,
		resources: resources,
		hud:       hud,
		verbose:   cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次），每次推进一个固定步长
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	input := ReadKeyboard()
	if input.Exit {
		log.Printf("[App] exit requested")
		return ebiten.Termination
	}

	a.machine.Tick(input)
	return nil
}

// Draw 绘制游戏画面
// 只读取世界中的位置和贴图句柄
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	ctx := a.machine.Context()
	r := &renderer{resources: a.resources, screen: screen, ctx: ctx}
	r.drawBackground()
	r.drawWalls()
	r.drawParticles()
	r.drawPlayer()

	a.hud.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Machine 返回状态机（供调试工具读取状态）
func (a *App) Machine() *game.Machine {
	return a.machine
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
