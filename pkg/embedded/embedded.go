// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包按路径前缀（"assets/" 或 "data/"）把请求转发到对应的文件系统，
// 并支持用磁盘目录覆盖嵌入资源（-assets 参数，便于替换贴图而无需重新编译）。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	overrideFS  fs.FS // 可选的磁盘覆盖目录，优先于嵌入资源
	initialized bool
)

// Init 初始化资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	overrideFS = nil
	initialized = true
}

// SetOverrideDir 设置磁盘覆盖目录
// 目录结构与嵌入资源一致（dir/assets/...、dir/data/...），传空字符串取消覆盖
func SetOverrideDir(dir string) error {
	if dir == "" {
		overrideFS = nil
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("override dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("override dir %s is not a directory", dir)
	}
	overrideFS = os.DirFS(dir)
	return nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(name string) string {
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "./")
	return path.Clean(name)
}

func route(name string) (fs.FS, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	switch {
	case strings.HasPrefix(name, "assets/"):
		return assetsFS, nil
	case strings.HasPrefix(name, "data/"):
		return dataFS, nil
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", name)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 覆盖目录中存在同名文件时优先使用覆盖文件
func Open(name string) (fs.File, error) {
	name = normalize(name)
	target, err := route(name)
	if err != nil {
		return nil, err
	}
	if overrideFS != nil {
		if f, err := overrideFS.Open(name); err == nil {
			return f, nil
		}
	}
	return target.Open(name)
}

// ReadFile 读取资源文件内容
func ReadFile(name string) ([]byte, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Exists 检查资源文件是否存在
func Exists(name string) bool {
	file, err := Open(name)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// FS 返回一个按前缀路由的 fs.FS 视图，供需要 fs.FS 的加载器使用
func FS() fs.FS {
	return routedFS{}
}

type routedFS struct{}

func (routedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}
