package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource 返回用于 DrawTriangles 的 1x1 白色源图
// 取 3x3 图像的中心像素，避免采样到边缘
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenCanvas 基于 ebiten.Image 的画布
//
// scale 为后备缓冲区像素与逻辑像素之比（受限的设备像素比），
// 所有坐标与尺寸在绘制前乘以 scale。
type EbitenCanvas struct {
	dst   *ebiten.Image
	scale float32
}

// NewEbitenCanvas 创建 ebiten 画布，dst 不能为 nil
func NewEbitenCanvas(dst *ebiten.Image, scale float64) *EbitenCanvas {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenCanvas{dst: dst, scale: float32(scale)}
}

// FillVerticalGradient 实现 Canvas
func (c *EbitenCanvas) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	s := c.scale
	x0, y0 := float32(x)*s, float32(y)*s
	x1, y1 := float32(x+w)*s, float32(y+h)*s

	vertices := []ebiten.Vertex{
		vertex(x0, y0, top),
		vertex(x1, y0, top),
		vertex(x0, y1, bottom),
		vertex(x1, y1, bottom),
	}
	indices := []uint16{0, 1, 2, 1, 3, 2}
	c.dst.DrawTriangles(vertices, indices, solidSource(), &ebiten.DrawTrianglesOptions{})
}

// FillCircle 实现 Canvas
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if clr.A == 0 || r <= 0 {
		return
	}
	s := c.scale
	vector.DrawFilledCircle(c.dst, float32(cx)*s, float32(cy)*s, float32(r)*s, clr, true)
}

// StrokeLine 实现 Canvas
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 || width <= 0 {
		return
	}
	s := c.scale
	vector.StrokeLine(c.dst, float32(x0)*s, float32(y0)*s, float32(x1)*s, float32(y1)*s, float32(width)*s, clr, true)
}

// StrokeGradientLine 实现 Canvas
// 以线段为中轴构造一个四边形，两端顶点分别着 from / to 色，由 GPU 插值
func (c *EbitenCanvas) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.NRGBA) {
	if width <= 0 || (from.A == 0 && to.A == 0) {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	s := c.scale
	// 单位法向量 × 半线宽
	nx := float32(-dy/length*width/2) * s
	ny := float32(dx/length*width/2) * s
	ax, ay := float32(x0)*s, float32(y0)*s
	bx, by := float32(x1)*s, float32(y1)*s

	vertices := []ebiten.Vertex{
		vertex(ax+nx, ay+ny, from),
		vertex(ax-nx, ay-ny, from),
		vertex(bx+nx, by+ny, to),
		vertex(bx-nx, by-ny, to),
	}
	indices := []uint16{0, 1, 2, 1, 3, 2}
	c.dst.DrawTriangles(vertices, indices, solidSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func vertex(x, y float32, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}
