package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/dualcharge/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const gameOverPrompt = "GAME OVER - press R to restart"

// HUD 分数与游戏结束提示，实现 game.Presenter
type HUD struct {
	face  *text.GoXFace
	score int
	state world.GameState
}

// NewHUD 创建 HUD，使用 basicfont 位图字体
func NewHUD() *HUD {
	return &HUD{
		face:  text.NewGoXFace(basicfont.Face7x13),
		state: world.StatePlaying,
	}
}

func (h *HUD) ScoreChanged(score int) {
	h.score = score
}

func (h *HUD) StateChanged(state world.GameState) {
	h.state = state
}

// ScoreText 返回左上角显示的分数文本
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Score: %d", h.score)
}

// ShowGameOver 报告是否显示游戏结束提示
func (h *HUD) ShowGameOver() bool {
	return h.state == world.StateGameOver
}

// Draw 绘制 HUD
func (h *HUD) Draw(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(28, 26)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, h.ScoreText(), h.face, op)

	if !h.ShowGameOver() {
		return
	}

	w, sh := screenSize()
	tw, th := text.Measure(gameOverPrompt, h.face, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate((w-tw)/2, (sh-th)/2)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 80, B: 80, A: 255})
	text.Draw(screen, gameOverPrompt, h.face, op)
}
