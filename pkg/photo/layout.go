package photo

import (
	"math"

	"github.com/gonewx/starry/pkg/config"
)

const (
	// HeartMaxPhotos 心形开场最多使用的照片数
	HeartMaxPhotos = 50

	heartScaleMobile  = 8
	heartScaleDesktop = 12
)

// 相册环参数
const (
	// RingAutoRotateSpeed 每帧自动旋转角度（度），方向为逆时针
	RingAutoRotateSpeed = 0.15

	ringBaseRadiusMobile  = 180
	ringBaseRadiusDesktop = 400
	ringSpacingMobile     = 25
	ringSpacingDesktop    = 45
)

// HeartLayout 返回开场心形中每张照片相对屏幕中心的偏移
//
// 取前 min(n, HeartMaxPhotos) 张照片，第 i 张对应参数 t = 2πi/count：
//
//	x = 16·sin³t
//	y = −(13·cos t − 5·cos 2t − 2·cos 3t − cos 4t)
//
// 再按屏幕宽度缩放，移动端 8 倍，桌面端 12 倍。y 轴向下，心尖朝下。
func HeartLayout(n int, mobile bool) []config.Point {
	count := min(n, HeartMaxPhotos)
	if count <= 0 {
		return nil
	}

	scale := float64(heartScaleDesktop)
	if mobile {
		scale = heartScaleMobile
	}

	points := make([]config.Point, count)
	for i := range points {
		t := float64(i) / float64(count) * 2 * math.Pi
		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		points[i] = config.Point{X: x * scale, Y: y * scale}
	}
	return points
}

// Ring 一个年份的 3D 相册环
type Ring struct {
	// Radius 环半径（像素），随照片数增大，不小于基础半径
	Radius float64
	// Step 相邻照片的夹角（度）
	Step float64
}

// NewRing 计算 n 张照片的相册环
// n <= 0 时返回半径为基础半径、夹角为 0 的空环
func NewRing(n int, mobile bool) Ring {
	base, spacing := float64(ringBaseRadiusDesktop), float64(ringSpacingDesktop)
	if mobile {
		base, spacing = ringBaseRadiusMobile, ringSpacingMobile
	}
	if n <= 0 {
		return Ring{Radius: base}
	}
	return Ring{
		Radius: math.Max(base, float64(n)*spacing),
		Step:   360 / float64(n),
	}
}

// Angle 返回第 i 张照片在第 tick 帧的绕 Y 轴角度（度），范围 [0, 360)
func (r Ring) Angle(i int, tick uint64) float64 {
	a := math.Mod(float64(i)*r.Step-float64(tick)*RingAutoRotateSpeed, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Position 返回第 i 张照片在第 tick 帧的俯视坐标
// x 向右，z 指向观察者，原点为环心
func (r Ring) Position(i int, tick uint64) (x, z float64) {
	rad := r.Angle(i, tick) * math.Pi / 180
	return r.Radius * math.Sin(rad), r.Radius * math.Cos(rad)
}
