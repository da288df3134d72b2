package world

// GameState 游戏状态
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Score 分数，Playing 期间单调不减
type Score struct {
	value int
}

// Value 返回当前分数
func (s *Score) Value() int {
	return s.value
}

// Add 增加分数，负值被忽略
func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

// Reset 归零，仅在进入 Playing 时调用
func (s *Score) Reset() {
	s.value = 0
}

// InputState 当前帧的按键状态
// 只反映本帧是否按住，不保留历史
type InputState struct {
	Up, Down, Left, Right bool
	Restart               bool
	Exit                  bool
}
