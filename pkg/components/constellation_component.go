package components

// ConstellationComponent 星座（北斗七星）
//
// Normalized 为相对视口的比例坐标，Screen 为当前视口下的屏幕坐标，
// 每次视口尺寸变化后由 ConstellationSystem 重新计算。
// 逐帧摇摆是全体共享的偏移量，不写回 Screen。
type ConstellationComponent struct {
	Normalized []Vec2
	Screen     []Vec2
}
