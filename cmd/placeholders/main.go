// placeholders 生成竞技场使用的占位贴图
//
// 用法:
//
//	go run ./cmd/placeholders -out assets/sprites
//
// 生成的文件名与 data/arena.yaml 中 sprites 段一致。
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/decker502/dualcharge/pkg/config"
)

var (
	outDir  = flag.String("out", config.SpriteDir, "输出目录")
	verbose = flag.Bool("verbose", false, "显示详细信息")
)

// placeholder 一张占位贴图的描述
type placeholder struct {
	file   string
	width  int
	height int
	draw   func(img *image.RGBA)
}

func placeholders() []placeholder {
	return []placeholder{
		{config.PlayerSprite, 64, 64, drawPlayer},
		{config.ElectronSprite, 48, 48, func(img *image.RGBA) {
			drawCharge(img, color.RGBA{R: 80, G: 160, B: 255, A: 255}, false)
		}},
		{config.PositronSprite, 48, 48, func(img *image.RGBA) {
			drawCharge(img, color.RGBA{R: 255, G: 90, B: 90, A: 255}, true)
		}},
		{config.BackgroundSprite, config.GameWindowWidth, config.GameWindowHeight, drawBackground},
	}
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("创建输出目录失败: %v", err)
	}

	for _, p := range placeholders() {
		path := filepath.Join(*outDir, p.file)
		if err := writePNG(path, render(p)); err != nil {
			log.Fatalf("生成 %s 失败: %v", p.file, err)
		}
		fmt.Printf("wrote %s (%dx%d)\n", path, p.width, p.height)
	}
}

func render(p placeholder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.draw(img)
	return img
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

// drawPlayer 带深色边框的绿色方块
func drawPlayer(img *image.RGBA) {
	b := img.Bounds()
	fill := color.RGBA{R: 120, G: 220, B: 120, A: 255}
	border := color.RGBA{R: 20, G: 60, B: 20, A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x < 3 || y < 3 || x >= b.Max.X-3 || y >= b.Max.Y-3 {
				img.Set(x, y, border)
			} else {
				img.Set(x, y, fill)
			}
		}
	}
}

// drawCharge 圆形粒子，中间画减号；plus 为 true 时再加一竖变成加号
func drawCharge(img *image.RGBA, clr color.RGBA, plus bool) {
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	radius := math.Min(cx, cy) - 1
	mark := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	arm := b.Dx() / 4

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if math.Hypot(dx, dy) > radius {
				continue
			}
			img.Set(x, y, clr)

			ix, iy := x-b.Dx()/2, y-b.Dy()/2
			horizontal := iy >= -2 && iy < 2 && ix >= -arm && ix < arm
			vertical := plus && ix >= -2 && ix < 2 && iy >= -arm && iy < arm
			if horizontal || vertical {
				img.Set(x, y, mark)
			}
		}
	}
}

// drawBackground 深色竖直渐变
func drawBackground(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		shade := uint8(10 + 30*y/b.Dy())
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{R: shade / 2, G: shade / 2, B: shade, A: 255})
		}
	}
}
