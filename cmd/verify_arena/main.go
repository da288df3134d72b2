// verify_arena 无窗口地运行竞技场，按脚本输入推进并打印每段的分数和状态
//
// 脚本格式：逗号分隔的 "按键:tick 数"，按键由 U/D/L/R（方向）和 X（重新开始）组成，
// "-" 表示不按键。例如：
//
//	go run ./cmd/verify_arena -script "R:60,RD:45,-:30,X:1" -seed 7
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/dualcharge/pkg/assets"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/embedded"
	"github.com/decker502/dualcharge/pkg/game"
	"github.com/decker502/dualcharge/pkg/world"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	root       = flag.String("root", ".", "资源根目录（包含 assets/ 和 data/）")
	configPath = flag.String("config", "", "竞技场配置文件路径（默认 data/arena.yaml）")
	seed       = flag.Int64("seed", 1, "随机种子")
	script     = flag.String("script", "L:60,U:60,R:120,D:120,LU:60", "输入脚本")
	lethal     = flag.String("lethal", "", "覆盖 rules.lethalCharge（attract/repel/none）")
)

// step 脚本中的一段
type step struct {
	input world.InputState
	ticks int
}

// parseScript 解析输入脚本
func parseScript(s string) ([]step, error) {
	var steps []step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing tick count", part)
		}
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("step %q: invalid tick count", part)
		}

		var in world.InputState
		for _, k := range strings.ToUpper(keys) {
			switch k {
			case 'U':
				in.Up = true
			case 'D':
				in.Down = true
			case 'L':
				in.Left = true
			case 'R':
				in.Right = true
			case 'X':
				in.Restart = true
			case '-':
			default:
				return nil, fmt.Errorf("step %q: unknown key %q", part, k)
			}
		}
		steps = append(steps, step{input: in, ticks: n})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return steps, nil
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	steps, err := parseScript(*script)
	if err != nil {
		log.Fatalf("脚本无效: %v", err)
	}

	fsys := os.DirFS(*root)
	embedded.Init(fsys, fsys)

	var arena *config.ArenaConfig
	if *configPath != "" {
		arena, err = config.LoadArenaConfig(*configPath)
	} else {
		arena, err = config.LoadArenaConfigFS(embedded.FS(), config.DefaultArenaConfigPath)
	}
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *lethal != "" {
		arena.Rules.LethalCharge = *lethal
		if err := arena.Validate(); err != nil {
			log.Fatalf("配置无效: %v", err)
		}
	}

	sprites, err := assets.LoadSpriteInfo(embedded.FS(), config.SpriteDir, arena.Sprites, arena.Scale)
	if err != nil {
		log.Fatalf("贴图加载失败: %v", err)
	}

	var presenter game.Presenter = game.NopPresenter{}
	if *verbose {
		presenter = game.LogPresenter{}
	}
	m := game.NewMachine(world.NewContext(*arena, sprites, *seed), presenter)
	fmt.Println(summary(m, "start"))

	for i, st := range steps {
		for t := 0; t < st.ticks; t++ {
			m.Tick(st.input)
		}
		fmt.Println(summary(m, fmt.Sprintf("step %d (%+v x%d)", i+1, st.input, st.ticks)))
	}
}

func summary(m *game.Machine, label string) string {
	ctx := m.Context()
	w := ctx.World
	line := fmt.Sprintf("%-40s tick=%-5d state=%-8s score=%-4d particles=%d", label, ctx.Tick, ctx.State, ctx.Score.Value(), w.Particles.Len())
	if w.HasPlayer {
		line += fmt.Sprintf(" player=(%.1f, %.1f)", w.Player.Body.Pos.X, w.Player.Body.Pos.Y)
	}
	return line
}
