// Package assets 在启动时读取贴图元数据，构建只读的 SpriteInfo
//
// 这里只解码 PNG 文件头获取尺寸，不创建 GPU 图像；
// 图像本身由宿主（pkg/app 的 ResourceManager）按同一个句柄加载。
// 因此终端前端和无窗口的验证工具也能得到与画面一致的碰撞体尺寸。
package assets

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/decker502/dualcharge/pkg/components"
	"github.com/decker502/dualcharge/pkg/config"
)

// LoadSpriteInfo 读取配置中列出的全部贴图
//
// 参数:
//   - fsys: 资源文件系统（通常为 embedded.FS()）
//   - dir: 贴图目录，如 config.SpriteDir
//   - files: 贴图文件名
//   - scale: 缩放因子，作用于像素尺寸
//
// 任何一张贴图缺失或无法解码都会返回错误，调用方应视为致命错误。
func LoadSpriteInfo(fsys fs.FS, dir string, files config.SpriteFiles, scale float64) (components.SpriteInfo, error) {
	if scale <= 0 {
		return components.SpriteInfo{}, fmt.Errorf("sprite scale must be positive, got %.3f", scale)
	}

	var info components.SpriteInfo
	entries := []struct {
		name   string
		file   string
		target *components.Sprite
	}{
		{"player", files.Player, &info.Player},
		{"particle", files.Particle, &info.Particle},
		{"electron", files.Electron, &info.Electron},
		{"background", files.Background, &info.Background},
	}

	for _, e := range entries {
		sprite, err := LoadSprite(fsys, path.Join(dir, e.file), scale)
		if err != nil {
			return components.SpriteInfo{}, fmt.Errorf("failed to load %s sprite: %w", e.name, err)
		}
		*e.target = sprite
		log.Printf("[Assets] %s sprite %s: %.0fx%.0f", e.name, sprite.Handle, sprite.Size.X, sprite.Size.Y)
	}

	return info, nil
}

// LoadSprite 读取单张贴图的尺寸并乘以缩放因子
func LoadSprite(fsys fs.FS, handle string, scale float64) (components.Sprite, error) {
	f, err := fsys.Open(handle)
	if err != nil {
		return components.Sprite{}, fmt.Errorf("failed to open image file %s: %w", handle, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return components.Sprite{}, fmt.Errorf("failed to decode image %s: %w", handle, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return components.Sprite{}, fmt.Errorf("image %s has empty size %dx%d", handle, cfg.Width, cfg.Height)
	}

	return components.Sprite{
		Handle: handle,
		Size:   components.Vec2{X: float64(cfg.Width) * scale, Y: float64(cfg.Height) * scale},
	}, nil
}
