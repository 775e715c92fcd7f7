package photo

import (
	"math"
	"testing"

	"github.com/gonewx/starry/pkg/config"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHeartLayout(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		mobile    bool
		wantCount int
		// 需要校验的点：下标 -> 坐标
		want map[int]config.Point
	}{
		{
			name:      "desktop quarter points",
			n:         4,
			wantCount: 4,
			want: map[int]config.Point{
				0: {X: 0, Y: -60},
				1: {X: 192, Y: -48},
				2: {X: 0, Y: 204},
				3: {X: -192, Y: -48},
			},
		},
		{
			name:      "mobile scale",
			n:         4,
			mobile:    true,
			wantCount: 4,
			want: map[int]config.Point{
				0: {X: 0, Y: -40},
				1: {X: 128, Y: -32},
				2: {X: 0, Y: 136},
			},
		},
		{
			name:      "capped at fifty photos",
			n:         120,
			wantCount: HeartMaxPhotos,
			want:      map[int]config.Point{0: {X: 0, Y: -60}},
		},
		{name: "no photos", n: 0, wantCount: 0},
		{name: "negative count", n: -3, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeartLayout(tt.n, tt.mobile)
			if len(got) != tt.wantCount {
				t.Fatalf("len = %d, want %d", len(got), tt.wantCount)
			}
			for i, want := range tt.want {
				if !approxEqual(got[i].X, want.X) || !approxEqual(got[i].Y, want.Y) {
					t.Errorf("point %d = (%.4f, %.4f), want (%.0f, %.0f)", i, got[i].X, got[i].Y, want.X, want.Y)
				}
			}
		})
	}
}

func TestHeartLayout_Symmetric(t *testing.T) {
	points := HeartLayout(50, false)
	// t 与 2π - t 关于 y 轴对称
	for i := 1; i < 25; i++ {
		a, b := points[i], points[50-i]
		if !approxEqual(a.X, -b.X) || !approxEqual(a.Y, b.Y) {
			t.Errorf("points %d and %d not mirrored: %+v vs %+v", i, 50-i, a, b)
		}
	}
}

func TestNewRing(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		mobile     bool
		wantRadius float64
		wantStep   float64
	}{
		{"mobile few photos use base radius", 5, true, 180, 72},
		{"mobile many photos grow radius", 20, true, 500, 18},
		{"desktop few photos use base radius", 5, false, 400, 72},
		{"desktop many photos grow radius", 10, false, 450, 36},
		{"empty ring", 0, false, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRing(tt.n, tt.mobile)
			if got.Radius != tt.wantRadius || got.Step != tt.wantStep {
				t.Errorf("NewRing(%d, %v) = %+v, want radius %.0f step %.0f",
					tt.n, tt.mobile, got, tt.wantRadius, tt.wantStep)
			}
		})
	}
}

func TestRing_AutoRotate(t *testing.T) {
	r := NewRing(4, false)

	tests := []struct {
		i    int
		tick uint64
		want float64
	}{
		{0, 0, 0},
		{1, 0, 90},
		{3, 0, 270},
		// 每帧逆转 0.15 度
		{1, 100, 75},
		{0, 100, 345},
		// 2400 帧正好转一整圈
		{2, 2400, 180},
	}
	for _, tt := range tests {
		if got := r.Angle(tt.i, tt.tick); !approxEqual(got, tt.want) {
			t.Errorf("Angle(%d, %d) = %.6f, want %.0f", tt.i, tt.tick, got, tt.want)
		}
	}

	x, z := r.Position(1, 0)
	if !approxEqual(x, 400) || !approxEqual(z, 0) {
		t.Errorf("Position(1, 0) = (%.4f, %.4f), want (400, 0)", x, z)
	}
	x, z = r.Position(0, 0)
	if !approxEqual(x, 0) || !approxEqual(z, 400) {
		t.Errorf("Position(0, 0) = (%.4f, %.4f), want (0, 400)", x, z)
	}
}
