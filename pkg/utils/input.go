// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次指针按下事件（逻辑像素坐标）
type PointerPress struct {
	X, Y float64
	// Touch 为 true 表示来自触摸，否则来自鼠标左键
	Touch bool
}

// AppendJustPressedPointers 追加本帧刚按下的所有指针
//
// 同一帧内的多点触摸各自产生一次按下；鼠标左键与触摸同时存在时都会返回。
// 屏幕坐标按 scale（后备缓冲区像素 / 逻辑像素）换算回逻辑坐标。
func AppendJustPressedPointers(presses []PointerPress, scale float64) []PointerPress {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		lx, ly := ToLogical(x, y, scale)
		presses = append(presses, PointerPress{X: lx, Y: ly, Touch: true})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		lx, ly := ToLogical(x, y, scale)
		presses = append(presses, PointerPress{X: lx, Y: ly})
	}

	return presses
}

// ToLogical 将后备缓冲区坐标换算为逻辑坐标
// scale <= 0 时视为 1
func ToLogical(x, y int, scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(x) / scale, float64(y) / scale
}
