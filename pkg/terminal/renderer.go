package terminal

import (
	"fmt"
	"math"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/world"
	"github.com/gdamore/tcell/v2"
)

var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack).Bold(true)
	styleElectron = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack)
	stylePositron = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleGameOver = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

const gameOverPrompt = "GAME OVER - press R to restart"

// Grid 世界坐标到字符格的映射
// 竞技场占据除最后一行（状态栏）以外的全部字符格
type Grid struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// Cell 返回世界坐标所在的字符格，超出范围时夹到边缘
func (g Grid) Cell(p components.Vec2) (int, int) {
	x := int(math.Floor(p.X / g.WorldW * float64(g.Cols)))
	y := int(math.Floor(p.Y / g.WorldH * float64(g.Rows)))
	return clamp(x, 0, g.Cols-1), clamp(y, 0, g.Rows-1)
}

// Span 返回碰撞体覆盖的字符格范围（闭区间）
func (g Grid) Span(b components.Body) (x0, y0, x1, y1 int) {
	x0, y0 = g.Cell(b.Min())
	// 右下边缘恰好落在格线上时不占用下一格
	x1, y1 = g.Cell(b.Max().Sub(components.Vec2{X: 1e-9, Y: 1e-9}))
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Renderer 把世界绘制到 tcell 屏幕
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Grid 返回当前屏幕尺寸下的映射
func (r *Renderer) Grid(ctx *world.Context) Grid {
	cols, rows := r.screen.Size()
	return Grid{Cols: cols, Rows: max(rows-1, 1), WorldW: ctx.Config.Screen.Width, WorldH: ctx.Config.Screen.Height}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(ctx *world.Context, status *Status) {
	r.screen.Clear()
	g := r.Grid(ctx)
	w := ctx.World

	if w.WallsSpawned {
		for _, wall := range w.Walls {
			r.fill(g, wall.Body, '#', styleWall)
		}
	}

	w.Particles.Each(func(_ ecs.EntityID, p *components.Particle) {
		x, y := g.Cell(p.Body.Pos)
		if p.Charge == components.ChargeAttract {
			r.screen.SetContent(x, y, '-', nil, styleElectron)
		} else {
			r.screen.SetContent(x, y, '+', nil, stylePositron)
		}
	})

	if w.HasPlayer {
		x, y := g.Cell(w.Player.Body.Pos)
		r.screen.SetContent(x, y, '@', nil, stylePlayer)
	}

	r.drawStatus(g, status)
	r.screen.Show()
}

func (r *Renderer) fill(g Grid, b components.Body, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := g.Span(b)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawStatus(g Grid, status *Status) {
	row := g.Rows
	r.drawText(0, row, status.Text(), styleStatus)

	if status.GameOver() {
		x := (g.Cols - len(gameOverPrompt)) / 2
		r.drawText(max(x, 0), g.Rows/2, gameOverPrompt, styleGameOver)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Status 状态栏，实现 game.Presenter
type Status struct {
	score int
	state world.GameState
}

// NewStatus 创建状态栏
func NewStatus() *Status {
	return &Status{state: world.StatePlaying}
}

func (s *Status) ScoreChanged(score int) {
	s.score = score
}

func (s *Status) StateChanged(state world.GameState) {
	s.state = state
}

// GameOver 报告是否处于游戏结束状态
func (s *Status) GameOver() bool {
	return s.state == world.StateGameOver
}

// Text 状态栏文本
func (s *Status) Text() string {
	return fmt.Sprintf("Score: %d  [%s]  arrows/WASD move, R restart, Esc quit", s.score, s.state)
}
