package app

import (
	"image/color"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/ecs"
	"github.com/decker502/dualcharge/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var wallColor = color.RGBA{R: 70, G: 70, B: 90, A: 255}

// renderer 一帧的绘制过程
type renderer struct {
	resources *ResourceManager
	screen    *ebiten.Image
	ctx       *world.Context
}

// cameraOffset 世界坐标到屏幕坐标的平移量
func (r *renderer) cameraOffset() components.Vec2 {
	cfg := r.ctx.Config
	center := components.Vec2{X: cfg.Screen.Width / 2, Y: cfg.Screen.Height / 2}
	return center.Sub(r.ctx.World.Camera.Center)
}

func (r *renderer) drawBackground() {
	img := r.resources.GetImage(r.ctx.Sprites.Background.Handle)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(r.ctx.Config.Screen.Width/float64(b.Dx()), r.ctx.Config.Screen.Height/float64(b.Dy()))
	r.screen.DrawImage(img, op)
}

func (r *renderer) drawWalls() {
	w := r.ctx.World
	if !w.WallsSpawned {
		return
	}
	off := r.cameraOffset()
	for _, wall := range w.Walls {
		topLeft := wall.Body.Min().Add(off)
		size := wall.Body.Size()
		vector.DrawFilledRect(r.screen, float32(topLeft.X), float32(topLeft.Y), float32(size.X), float32(size.Y), wallColor, false)
	}
}

func (r *renderer) drawParticles() {
	r.ctx.World.Particles.Each(func(_ ecs.EntityID, p *components.Particle) {
		r.drawSprite(r.ctx.Sprites.ParticleSprite(p.Charge), p.Body.Pos)
	})
}

func (r *renderer) drawPlayer() {
	if r.ctx.World.HasPlayer {
		r.drawSprite(r.ctx.Sprites.Player, r.ctx.World.Player.Body.Pos)
	}
}

// drawSprite 以 pos 为中心绘制贴图，按缩放因子缩放
func (r *renderer) drawSprite(sprite components.Sprite, pos components.Vec2) {
	img := r.resources.GetImage(sprite.Handle)
	if img == nil {
		return
	}
	topLeft := pos.Sub(sprite.Size.Scale(0.5)).Add(r.cameraOffset())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.ctx.Config.Scale, r.ctx.Config.Scale)
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

// screenSize 逻辑屏幕尺寸
func screenSize() (float64, float64) {
	return config.GameWindowWidth, config.GameWindowHeight
}
