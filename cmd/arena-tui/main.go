// arena-tui 在终端中运行竞技场
//
// 需要在仓库根目录运行（读取 assets/ 和 data/）：
//
//	go run ./cmd/arena-tui
//	go run ./cmd/arena-tui -config my_arena.yaml -seed 42
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/dualcharge/pkg/assets"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/embedded"
	"github.com/decker502/dualcharge/pkg/game"
	"github.com/decker502/dualcharge/pkg/terminal"
	"github.com/decker502/dualcharge/pkg/world"
	"github.com/gdamore/tcell/v2"
)

var (
	root       = flag.String("root", ".", "资源根目录（包含 assets/ 和 data/）")
	configPath = flag.String("config", "", "竞技场配置文件路径（默认 data/arena.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	holdTicks  = flag.Int("hold", terminal.DefaultHoldTicks, "一次按键视为按住的 tick 数")
	logFile    = flag.String("log", "", "日志文件（终端被占用，默认丢弃日志）")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("无法创建日志文件: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	fsys := os.DirFS(*root)
	embedded.Init(fsys, fsys)

	var (
		arena *config.ArenaConfig
		err   error
	)
	if *configPath != "" {
		arena, err = config.LoadArenaConfig(*configPath)
	} else {
		arena, err = config.LoadArenaConfigFS(embedded.FS(), config.DefaultArenaConfigPath)
	}
	if err != nil {
		fatal(err)
	}

	sprites, err := assets.LoadSpriteInfo(embedded.FS(), config.SpriteDir, arena.Sprites, arena.Scale)
	if err != nil {
		fatal(err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}
	defer screen.Fini()

	status := terminal.NewStatus()
	machine := game.NewMachine(world.NewContext(*arena, sprites, s), game.MultiPresenter{status, game.LogPresenter{}})
	terminal.NewHost(screen, machine, status, *holdTicks).Run()
}

// fatal 在终端接管之前报错退出
func fatal(err error) {
	os.Stderr.WriteString("arena-tui: " + err.Error() + "\n")
	os.Exit(1)
}
