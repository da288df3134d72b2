package app

import (
	"github.com/decker502/dualcharge/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 按键映射：方向键或 WASD 移动，R/空格重新开始，Esc 退出
var (
	upKeys      = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	downKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeySpace}
	exitKeys    = []ebiten.Key{ebiten.KeyEscape}
)

// ReadKeyboard 读取当前帧的键盘状态
func ReadKeyboard() world.InputState {
	return inputFromKeys(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}

// inputFromKeys 把按键查询函数转换为 InputState
// 移动键看是否按住；重新开始和退出只在按下的那一帧触发
func inputFromKeys(pressed, justPressed func(ebiten.Key) bool) world.InputState {
	return world.InputState{
		Up:      anyKey(pressed, upKeys),
		Down:    anyKey(pressed, downKeys),
		Left:    anyKey(pressed, leftKeys),
		Right:   anyKey(pressed, rightKeys),
		Restart: anyKey(justPressed, restartKeys),
		Exit:    anyKey(justPressed, exitKeys),
	}
}

func anyKey(query func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if query(k) {
			return true
		}
	}
	return false
}
