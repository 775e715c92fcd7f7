package components

// MeteorComponent 流星
// 位置和速度分别存放在 PositionComponent / VelocityComponent 中
type MeteorComponent struct {
	Length    float64 // 尾迹长度系数
	Alpha     float64 // 头部透明度，每帧线性衰减
	Thickness float64 // 线宽（像素）
}
