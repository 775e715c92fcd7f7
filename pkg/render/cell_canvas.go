package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// 低于此透明度的前景不落到字符网格上
	minCellAlpha = 0.05
	// 样式缓存上限，超出后整体清空重建
	maxCachedStyles = 4096
)

type cellStyleKey struct {
	bg, fg string
}

// CellCanvas 终端字符网格画布
//
// 每个字符格代表 cellW × cellH 逻辑像素。背景渐变和大半径光晕写入格子背景色，
// 小于一个格子的点和线段写入前景字符，后绘制的覆盖先绘制的。
type CellCanvas struct {
	cols, rows   int
	cellW, cellH float64

	glyphs []rune
	fg     []colorful.Color
	bg     []colorful.Color

	// 跨帧复用的 (背景, 前景) 样式
	styles map[cellStyleKey]lipgloss.Style
}

// NewCellCanvas 创建字符网格画布
func NewCellCanvas(cols, rows int, cellW, cellH float64) *CellCanvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &CellCanvas{
		cols:   cols,
		rows:   rows,
		cellW:  cellW,
		cellH:  cellH,
		glyphs: make([]rune, cols*rows),
		fg:     make([]colorful.Color, cols*rows),
		bg:     make([]colorful.Color, cols*rows),
		styles: make(map[cellStyleKey]lipgloss.Style),
	}
	c.Reset()
	return c
}

// Size 返回网格列数与行数
func (c *CellCanvas) Size() (int, int) {
	return c.cols, c.rows
}

// Reset 清空为黑底空格
func (c *CellCanvas) Reset() {
	for i := range c.glyphs {
		c.glyphs[i] = ' '
		c.fg[i] = colorful.Color{}
		c.bg[i] = colorful.Color{}
	}
}

// Glyph 返回指定格子的字符，越界返回 0
func (c *CellCanvas) Glyph(col, row int) rune {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0
	}
	return c.glyphs[row*c.cols+col]
}

// Background 返回指定格子的背景色
func (c *CellCanvas) Background(col, row int) colorful.Color {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return colorful.Color{}
	}
	return c.bg[row*c.cols+col]
}

// FillVerticalGradient 实现 Canvas
func (c *CellCanvas) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	if h <= 0 || w <= 0 {
		return
	}
	topC, bottomC := toColorful(top), toColorful(bottom)

	for row := 0; row < c.rows; row++ {
		cy := (float64(row) + 0.5) * c.cellH
		if cy < y || cy > y+h {
			continue
		}
		t := (cy - y) / h
		shade := topC.BlendRgb(bottomC, t)
		for col := 0; col < c.cols; col++ {
			cx := (float64(col) + 0.5) * c.cellW
			if cx < x || cx > x+w {
				continue
			}
			i := row*c.cols + col
			c.bg[i] = shade
			c.glyphs[i] = ' '
		}
	}
}

// FillCircle 实现 Canvas
func (c *CellCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	alpha := float64(clr.A) / 255
	if alpha <= 0 || r <= 0 {
		return
	}

	// 大于半个格子的圆当作光晕染背景
	if 2*r >= math.Min(c.cellW, c.cellH) {
		tint := toColorful(clr)
		for row := 0; row < c.rows; row++ {
			py := (float64(row) + 0.5) * c.cellH
			for col := 0; col < c.cols; col++ {
				px := (float64(col) + 0.5) * c.cellW
				if math.Hypot(px-cx, py-cy) > r {
					continue
				}
				i := row*c.cols + col
				c.bg[i] = c.bg[i].BlendRgb(tint, alpha)
			}
		}
		return
	}

	c.plot(cx, cy, pointGlyph(r*alpha), clr, alpha)
}

// StrokeLine 实现 Canvas
func (c *CellCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	c.StrokeGradientLine(x0, y0, x1, y1, width, clr, clr)
}

// StrokeGradientLine 实现 Canvas
func (c *CellCanvas) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.NRGBA) {
	if width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx)/c.cellW, math.Abs(dy)/c.cellH)))
	if steps < 1 {
		steps = 1
	}
	glyph := lineGlyph(dx, dy)
	fromC, toC := toColorful(from), toColorful(to)
	fromA, toA := float64(from.A)/255, float64(to.A)/255

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a := fromA + (toA-fromA)*t
		shade := fromC.BlendRgb(toC, t)
		c.plotColor(x0+dx*t, y0+dy*t, glyph, shade, a)
	}
}

func (c *CellCanvas) plot(x, y float64, glyph rune, clr color.NRGBA, alpha float64) {
	c.plotColor(x, y, glyph, toColorful(clr), alpha)
}

func (c *CellCanvas) plotColor(x, y float64, glyph rune, shade colorful.Color, alpha float64) {
	if alpha < minCellAlpha {
		return
	}
	col := int(math.Floor(x / c.cellW))
	row := int(math.Floor(y / c.cellH))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	i := row*c.cols + col
	c.glyphs[i] = glyph
	c.fg[i] = c.bg[i].BlendRgb(shade, math.Min(alpha, 1))
}

// String 渲染为带颜色的终端文本
func (c *CellCanvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			style := c.style(c.bg[i].Clamped().Hex(), c.fg[i].Clamped().Hex())
			b.WriteString(style.Render(string(c.glyphs[i])))
		}
		if row < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (c *CellCanvas) style(bg, fg string) lipgloss.Style {
	key := cellStyleKey{bg: bg, fg: fg}
	if st, ok := c.styles[key]; ok {
		return st
	}
	if len(c.styles) >= maxCachedStyles {
		clear(c.styles)
	}
	st := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
	c.styles[key] = st
	return st
}

// pointGlyph 按亮度（半径 × 透明度）选择点状字符
func pointGlyph(intensity float64) rune {
	switch {
	case intensity >= 1.5:
		return '✦'
	case intensity >= 1.0:
		return '*'
	case intensity >= 0.5:
		return '•'
	default:
		return '·'
	}
}

// lineGlyph 按方向选择线段字符（屏幕坐标 y 轴向下）
func lineGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case adx > 2*ady:
		return '─'
	case ady > 2*adx:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
