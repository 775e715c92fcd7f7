package components

import "image/color"

// FireworkState 烟花生命周期状态
type FireworkState int

const (
	// FireworkAscending 上升中，向目标点逼近
	FireworkAscending FireworkState = iota
	// FireworkExploded 已爆炸，粒子下落并淡出
	FireworkExploded
	// FireworkDone 粒子全部消失，等待移除
	FireworkDone
)

// String 返回状态名称（用于日志）
func (s FireworkState) String() string {
	switch s {
	case FireworkAscending:
		return "Ascending"
	case FireworkExploded:
		return "Exploded"
	case FireworkDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// FireworkComponent 烟花
//
// 当前位置存放在 PositionComponent 中。
// 状态转换只有 Ascending → Exploded → Done 一条路径。
type FireworkComponent struct {
	StartX, StartY   float64 // 发射点
	TargetX, TargetY float64 // 爆炸目标点

	Color color.NRGBA
	State FireworkState

	// Particles 爆炸后的碎片，仅在 Exploded 状态下非空
	Particles []Particle
}

// Particle 烟花碎片
// 不作为独立实体存在，由所属烟花持有
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Color  color.NRGBA
}
