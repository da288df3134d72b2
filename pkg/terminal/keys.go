// Package terminal 在终端里运行竞技场：tcell 负责屏幕和键盘，模拟核心与 Ebitengine 宿主完全相同
package terminal

import (
	"unicode"

	"github.com/decker502/dualcharge/pkg/world"
	"github.com/gdamore/tcell/v2"
)

// DefaultHoldTicks 终端没有按键抬起事件，一次按键被视为按住这么多个 tick
// 之后由系统的按键重复事件续期
const DefaultHoldTicks = 12

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// KeyState 把终端按键事件转换为每个 tick 的 InputState
// 只在模拟 goroutine 上使用
type KeyState struct {
	holdTicks uint64
	// heldUntil 方向键的按住截止 tick（不含）
	heldUntil [dirCount]uint64
	restart   bool
}

// NewKeyState 创建按键状态，holdTicks <= 0 时使用 DefaultHoldTicks
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyState{holdTicks: uint64(holdTicks)}
}

// HandleKey 处理一个按键事件，返回 true 表示请求退出
func (k *KeyState) HandleKey(ev *tcell.EventKey, tick uint64) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		k.press(dirUp, tick)
	case tcell.KeyDown:
		k.press(dirDown, tick)
	case tcell.KeyLeft:
		k.press(dirLeft, tick)
	case tcell.KeyRight:
		k.press(dirRight, tick)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c' {
			return true
		}
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			k.press(dirUp, tick)
		case 's':
			k.press(dirDown, tick)
		case 'a':
			k.press(dirLeft, tick)
		case 'd':
			k.press(dirRight, tick)
		case 'r', ' ':
			k.restart = true
		case 'q':
			return true
		}
	}
	return false
}

// press 按下一个方向，同时松开相反方向
func (k *KeyState) press(d direction, tick uint64) {
	k.heldUntil[d] = tick + k.holdTicks
	k.heldUntil[opposite(d)] = 0
}

func opposite(d direction) direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	}
	return dirLeft
}

// Input 返回 tick 时刻的输入；重新开始是一次性的，读取后清除
func (k *KeyState) Input(tick uint64) world.InputState {
	in := world.InputState{
		Up:      tick < k.heldUntil[dirUp],
		Down:    tick < k.heldUntil[dirDown],
		Left:    tick < k.heldUntil[dirLeft],
		Right:   tick < k.heldUntil[dirRight],
		Restart: k.restart,
	}
	k.restart = false
	return in
}
