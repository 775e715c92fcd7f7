package components

// StarComponent 背景星星
//
// 创建后不再修改；视口尺寸变化时整批重新生成。
// 渲染透明度 = 0.5 + 0.5·sin(tick·Speed + Phase)
type StarComponent struct {
	Radius float64 // 半径（像素）
	Phase  float64 // 闪烁相位 [0, 2π)
	Speed  float64 // 闪烁角速度（弧度/帧）
}
