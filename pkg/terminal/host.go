package terminal

import (
	"log"
	"time"

	"github.com/decker502/dualcharge/pkg/config"
	"github.com/decker502/dualcharge/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// Host 终端宿主：事件 goroutine 把 tcell 事件送入缓冲通道，
// 模拟、按键状态和绘制都在调用 Run 的 goroutine 上进行
type Host struct {
	screen   tcell.Screen
	machine  *game.Machine
	keys     *KeyState
	renderer *Renderer
	status   *Status
}

// NewHost 创建终端宿主；status 应当已注册为 machine 的展示方
func NewHost(screen tcell.Screen, machine *game.Machine, status *Status, holdTicks int) *Host {
	return &Host{
		screen:   screen,
		machine:  machine,
		keys:     NewKeyState(holdTicks),
		renderer: NewRenderer(screen),
		status:   status,
	}
}

// Step 推进一个 tick 并重绘
func (h *Host) Step() {
	tick := h.machine.Context().Tick
	h.machine.Tick(h.keys.Input(tick))
	h.renderer.Draw(h.machine.Context(), h.status)
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if h.keys.HandleKey(ev, h.machine.Context().Tick) {
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
	case nil:
		// 屏幕已关闭
		return false
	}
	return true
}

// Run 运行主循环直到用户退出
func (h *Host) Run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	h.renderer.Draw(h.machine.Context(), h.status)
	for {
		select {
		case ev := <-eventChan:
			if !h.HandleEvent(ev) {
				log.Printf("[Terminal] quit at tick %d", h.machine.Context().Tick)
				return
			}
		case <-ticker.C:
			h.Step()
		}
	}
}
