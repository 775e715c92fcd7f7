package render

import "image/color"

// OpKind 绘制调用类型
type OpKind int

const (
	OpGradient OpKind = iota
	OpCircle
	OpLine
	OpGradientLine
)

// String 返回调用类型名称
func (k OpKind) String() string {
	switch k {
	case OpGradient:
		return "gradient"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpGradientLine:
		return "gradientLine"
	default:
		return "unknown"
	}
}

// Op 一次绘制调用
// 圆形使用 X0/Y0/R，矩形使用 X0/Y0/X1(宽)/Y1(高)，线段使用 X0/Y0/X1/Y1/Width
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R, Width       float64
	Color, Color2  color.NRGBA
}

// Recorder 记录绘制调用的画布，用于验证绘制顺序与参数
type Recorder struct {
	Ops []Op
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count 统计某类调用的次数
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// FillVerticalGradient 实现 Canvas
func (r *Recorder) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, X0: x, Y0: y, X1: w, Y1: h, Color: top, Color2: bottom})
}

// FillCircle 实现 Canvas
func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, R: radius, Color: clr})
}

// StrokeLine 实现 Canvas
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

// StrokeGradientLine 实现 Canvas
func (r *Recorder) StrokeGradientLine(x0, y0, x1, y1, width float64, from, to color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradientLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: from, Color2: to})
}
