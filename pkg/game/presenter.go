package game

import (
	"log"

	"github.com/decker502/dualcharge/pkg/world"
)

// Presenter 分数与状态的展示方（HUD、终端状态栏等）
// 由状态机在模拟 goroutine 上调用，实现方不需要加锁
type Presenter interface {
	// ScoreChanged 分数发生变化（包括新一局开始时归零）
	ScoreChanged(score int)
	// StateChanged 游戏状态发生切换
	StateChanged(state world.GameState)
}

// NopPresenter 什么也不做
type NopPresenter struct{}

func (NopPresenter) ScoreChanged(int)             {}
func (NopPresenter) StateChanged(world.GameState) {}

// LogPresenter 把分数和状态变化写入日志
type LogPresenter struct{}

func (LogPresenter) ScoreChanged(score int) {
	log.Printf("[Score] %d", score)
}

func (LogPresenter) StateChanged(state world.GameState) {
	log.Printf("[Score] state -> %s", state)
}

// MultiPresenter 把通知依次转发给多个展示方
type MultiPresenter []Presenter

func (m MultiPresenter) ScoreChanged(score int) {
	for _, p := range m {
		p.ScoreChanged(score)
	}
}

func (m MultiPresenter) StateChanged(state world.GameState) {
	for _, p := range m {
		p.StateChanged(state)
	}
}
