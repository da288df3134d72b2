package app

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder

	"github.com/decker502/dualcharge/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager 加载并缓存贴图
//
// 路径即 components.Sprite 的 Handle，从嵌入资源（或覆盖目录）读取。
// 只在模拟 goroutine 上使用，不加锁。
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // path -> Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage 加载图片，已加载过的直接返回缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage 返回已缓存的图片，未加载时返回 nil
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// ImageCount 返回缓存的图片数量
func (rm *ResourceManager) ImageCount() int {
	return len(rm.imageCache)
}
