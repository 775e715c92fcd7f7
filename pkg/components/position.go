package components

// PositionComponent 实体的位置（逻辑像素，视口左上角为原点）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（像素/帧）
type VelocityComponent struct {
	VX float64
	VY float64
}

// Vec2 二维向量，用于不单独成为实体的点（如星座顶点、烟花粒子）
type Vec2 struct {
	X float64
	Y float64
}
