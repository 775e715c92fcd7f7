package systems

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gonewx/starry/pkg/components"
	"github.com/gonewx/starry/pkg/ecs"
)

func TestConstellationResize_Desktop(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	system := NewConstellationSystem(em, cfg)

	system.Resize(1280, 800)
	points := system.Points()
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}

	want := components.Vec2{X: cfg.Constellation.Points[0].X * 1280, Y: cfg.Constellation.Points[0].Y * 800}
	if diff := cmp.Diff(want, points[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("first point mismatch (-want +got):\n%s", diff)
	}
}

func TestConstellationResize_MobileOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	system := NewConstellationSystem(em, cfg)

	system.Resize(500, 900)
	got := system.Points()[0].X
	want := (cfg.Constellation.Points[0].X + cfg.Constellation.MobileOffsetX) * 500
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("mobile x = %.4f, want %.4f", got, want)
	}
}

func TestConstellationResize_Idempotent(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewConstellationSystem(em, newQuietConfig())

	system.Resize(1024, 768)
	first := append([]components.Vec2(nil), system.Points()...)
	system.Resize(1024, 768)

	if diff := cmp.Diff(first, system.Points()); diff != "" {
		t.Errorf("resize with same size changed points (-first +second):\n%s", diff)
	}
}

func TestConstellationSwayAndBlink(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewConstellationSystem(em, newQuietConfig())

	dx, dy := system.Sway(0)
	if dx != 0 || dy != 2 {
		t.Errorf("sway at tick 0 = (%.3f, %.3f), want (0, 2)", dx, dy)
	}

	for tick := uint64(0); tick < 5000; tick += 13 {
		dx, dy := system.Sway(tick)
		if math.Abs(dx) > 5+1e-9 || math.Abs(dy) > 2+1e-9 {
			t.Fatalf("sway at tick %d out of amplitude: (%.3f, %.3f)", tick, dx, dy)
		}
		for i := 0; i < 7; i++ {
			b := system.Blink(tick, i)
			if b < 0.2-1e-9 || b > 1 {
				t.Fatalf("blink at tick %d point %d = %.3f, want within [0.2, 1]", tick, i, b)
			}
		}
	}
}

func TestConstellationSetConfig_RebuildsEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := newQuietConfig()
	system := NewConstellationSystem(em, cfg)
	system.Resize(1280, 800)

	next := newQuietConfig()
	next.Constellation.Points = next.Constellation.Points[:3]
	system.SetConfig(next)
	system.Resize(1280, 800)

	if got := len(system.Points()); got != 3 {
		t.Errorf("expected 3 points after reconfigure, got %d", got)
	}
	if got := ecs.CountWith[*components.ConstellationComponent](em); got != 1 {
		t.Errorf("expected exactly one constellation entity, got %d", got)
	}
}
