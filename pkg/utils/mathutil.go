package utils

// AlphaEpsilon 透明度视为 0 的阈值
// 0.02 的线性衰减从 1.0 连减 50 次会留下 ~1e-16 的浮点残差
const AlphaEpsilon = 1e-9

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Faded 判断透明度是否已衰减到 0
func Faded(alpha float64) bool {
	return alpha <= AlphaEpsilon
}
