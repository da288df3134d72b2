package main

import (
	"flag"
	"log"
	"time"

	"github.com/decker502/dualcharge/pkg/app"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "竞技场配置文件路径（默认使用内置 data/arena.yaml）")
	assetsDir  = flag.String("assets", "", "覆盖资源目录，其中的 assets/ 和 data/ 优先于内置资源")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)
	if err := embedded.SetOverrideDir(*assetsDir); err != nil {
		log.Fatalf("资源目录无效: %v", err)
	}

	var arena *config.ArenaConfig
	if *configPath != "" {
		loaded, err := config.LoadArenaConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		arena = loaded
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Arena:   arena,
		Seed:    s,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
