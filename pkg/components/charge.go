package components

import (
	"fmt"
	"strings"
)

// Charge 粒子的电荷符号
// Attract 粒子（电子）会加速飞向玩家，Repel 粒子（正电子）会加速远离玩家
type Charge int

const (
	ChargeAttract Charge = iota
	ChargeRepel
)

// String 返回电荷的配置名
func (c Charge) String() string {
	switch c {
	case ChargeAttract:
		return "attract"
	case ChargeRepel:
		return "repel"
	default:
		return fmt.Sprintf("Charge(%d)", int(c))
	}
}

// Sign 返回加速度方向系数：吸引为 +1（朝向玩家），排斥为 -1
func (c Charge) Sign() float64 {
	if c == ChargeRepel {
		return -1
	}
	return 1
}

// ParseCharge 解析配置中的电荷名（不区分大小写）
func ParseCharge(s string) (Charge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attract", "electron":
		return ChargeAttract, nil
	case "repel", "positron":
		return ChargeRepel, nil
	}
	return 0, fmt.Errorf("unknown charge %q", s)
}
