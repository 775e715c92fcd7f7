// Package render 提供夜空绘制所需的 2D 光栅画布抽象
//
// 渲染系统只依赖 Canvas 接口，桌面端使用 ebiten 实现，终端使用字符网格实现，
// 测试使用 Recorder 记录调用顺序。所有坐标均为逻辑像素。
package render

import (
	"image/color"
	"math"

	"github.com/gonewx/starry/pkg/utils"
)

// Canvas 2D 光栅画布
type Canvas interface {
	// FillVerticalGradient 用自上而下的线性渐变填充矩形
	FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA)

	// FillCircle 填充圆形，透明度取自 clr.A
	FillCircle(cx, cy, r float64, clr color.NRGBA)

	// StrokeLine 绘制纯色线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)

	// StrokeGradientLine 绘制颜色沿线段从 from 渐变到 to 的线段
	StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.NRGBA)
}

// WithAlpha 返回替换透明度后的颜色
// alpha 先被限制在 [0, 1]，再乘以原颜色的透明度
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	a := utils.Clamp01(alpha) * float64(c.A) / 255
	c.A = uint8(math.Round(a * 255))
	return c
}
