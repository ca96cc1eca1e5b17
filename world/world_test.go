package world

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func floor() cube.BBox {
	return cube.Box(-50, -1, -50, 50, 0, 50)
}

func near(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-3
}

func TestBodyRestsOnFloor(t *testing.T) {
	b := NewBody(NewLevel(floor()), mgl32.Vec3{}, 0.8, 2, 0.35)
	if !b.Grounded() {
		t.Fatalf("expected body spawned on the floor to be grounded")
	}
	if !b.Move(mgl32.Vec3{0, -0.1, 0}) {
		t.Fatalf("expected body to stay grounded")
	}
	if !near(b.Position().Y(), 0) {
		t.Fatalf("expected body to stay on the floor, got %v", b.Position())
	}
	if _, y, _ := b.Collisions(); !y {
		t.Fatalf("expected a vertical collision")
	}
}

func TestBodyFallsOntoFloor(t *testing.T) {
	b := NewBody(NewLevel(floor()), mgl32.Vec3{0, 1, 0}, 0.8, 2, 0.35)
	if b.Grounded() {
		t.Fatalf("expected body in the air not to be grounded")
	}
	if !b.Move(mgl32.Vec3{0.5, -2, 0}) {
		t.Fatalf("expected body to land")
	}
	if pos := b.Position(); !near(pos.Y(), 0) || !near(pos.X(), 0.5) {
		t.Fatalf("unexpected landing position %v", pos)
	}
}

func TestBodyWalksOffLedge(t *testing.T) {
	b := NewBody(NewLevel(cube.Box(-1, -1, -1, 1, 0, 1)), mgl32.Vec3{}, 0.8, 2, 0.35)
	for i := 0; i < 10; i++ {
		b.Move(mgl32.Vec3{0.3, -0.01, 0})
	}
	if b.Grounded() {
		t.Fatalf("expected body past the ledge to be airborne, at %v", b.Position())
	}
}

func TestBodyBlockedByWall(t *testing.T) {
	level := NewLevel(floor(), cube.Box(1, 0, -5, 2, 3, 5))
	b := NewBody(level, mgl32.Vec3{}, 0.8, 2, 0.35)
	b.Move(mgl32.Vec3{1, -0.01, 0})

	if !near(b.Position().X(), 0.6) {
		t.Fatalf("expected body to stop against the wall, got %v", b.Position())
	}
	if x, _, _ := b.Collisions(); !x {
		t.Fatalf("expected an X collision")
	}
}

func TestBodyStepsUp(t *testing.T) {
	level := NewLevel(floor(), cube.Box(0.5, 0, -5, 3, 0.25, 5))
	b := NewBody(level, mgl32.Vec3{}, 0.8, 2, 0.35)
	b.Move(mgl32.Vec3{0.3, -0.01, 0})

	pos := b.Position()
	if !near(pos.Y(), 0.25) || !near(pos.X(), 0.3) {
		t.Fatalf("expected body to step onto the ledge, got %v", pos)
	}
	if !b.Grounded() {
		t.Fatalf("expected body to be grounded after stepping")
	}
}

func TestBodyDoesNotStepTooHigh(t *testing.T) {
	level := NewLevel(floor(), cube.Box(0.5, 0, -5, 3, 0.5, 5))
	b := NewBody(level, mgl32.Vec3{}, 0.8, 2, 0.35)
	b.Move(mgl32.Vec3{0.3, -0.01, 0})
	if pos := b.Position(); !near(pos.Y(), 0) || !near(pos.X(), 0.1) {
		t.Fatalf("expected body to be blocked by the ledge, got %v", pos)
	}
}

func TestSetHeightRefusesCeiling(t *testing.T) {
	level := NewLevel(floor(), cube.Box(-5, 1.5, -5, 5, 2.5, 5))
	b := NewBody(level, mgl32.Vec3{}, 0.8, 1.2, 0.35)

	b.SetHeight(2)
	if b.Height() != 1.2 {
		t.Fatalf("expected height to stay at 1.2 under a ceiling, got %v", b.Height())
	}
	b.SetHeight(1)
	if b.Height() != 1 {
		t.Fatalf("expected shrinking to succeed, got %v", b.Height())
	}
}

func TestProbe(t *testing.T) {
	level := NewLevel(floor(), cube.Box(1, 0, -5, 2, 3, 5))

	hit, ok := level.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 2)
	if !ok {
		t.Fatalf("expected probe to hit the wall")
	}
	if !near(hit.Distance, 1) || !near(hit.Point.X(), 1) {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("expected wall normal -X, got %v", hit.Normal)
	}

	if _, ok := level.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 0.5); ok {
		t.Fatalf("expected short probe to miss")
	}
	if _, ok := level.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-1, 0, 0}, 5); ok {
		t.Fatalf("expected probe away from the wall to miss")
	}
}

func TestProbeReturnsClosest(t *testing.T) {
	level := NewLevel(cube.Box(3, 0, -1, 4, 2, 1), cube.Box(1, 0, -1, 2, 2, 1))
	hit, ok := level.Probe(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	if !ok || !near(hit.Distance, 1) {
		t.Fatalf("expected closest hit at distance 1, got %+v (ok=%v)", hit, ok)
	}
}

func TestZeroVolumeBoxesIgnored(t *testing.T) {
	level := NewLevel(cube.Box(1, 1, 1, 1, 1, 1), floor())
	if len(level.Boxes()) != 1 {
		t.Fatalf("expected zero-volume box to be dropped, got %d boxes", len(level.Boxes()))
	}
}

func TestCollide(t *testing.T) {
	wall := cube.Box(1, 0, -1, 2, 2, 1)
	tests := []struct {
		name          string
		moving        cube.BBox
		vel           mgl32.Vec3
		blocked, esc  mgl32.Vec3
		depth         float32
	}{
		{"stops at face", cube.Box(-0.5, 0, -0.5, 0.5, 1, 0.5), mgl32.Vec3{1}, mgl32.Vec3{0.5}, mgl32.Vec3{0.5}, 0},
		{"short of face", cube.Box(-0.5, 0, -0.5, 0.5, 1, 0.5), mgl32.Vec3{0.25}, mgl32.Vec3{0.25}, mgl32.Vec3{0.25}, 0},
		{"moving away", cube.Box(2.5, 0, -0.5, 3.5, 1, 0.5), mgl32.Vec3{1}, mgl32.Vec3{1}, mgl32.Vec3{1}, 0},
		{"stops at far face", cube.Box(2.5, 0, -0.5, 3.5, 1, 0.5), mgl32.Vec3{-1}, mgl32.Vec3{-0.5}, mgl32.Vec3{-0.5}, 0},
		{"apart on two axes", cube.Box(-0.5, 3, -0.5, 0.5, 4, 0.5), mgl32.Vec3{1}, mgl32.Vec3{1}, mgl32.Vec3{1}, 0},
		{"overlap pushes out shallowest axis", cube.Box(0.75, 0.5, -0.5, 1.25, 1.5, 0.5), mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{-0.25}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collide(wall, tt.moving, tt.vel)
			if !c.blocked.ApproxFuncEqual(tt.blocked, near) {
				t.Fatalf("expected blocked velocity %v, got %v", tt.blocked, c.blocked)
			}
			if !c.escape.ApproxFuncEqual(tt.esc, near) {
				t.Fatalf("expected escape velocity %v, got %v", tt.esc, c.escape)
			}
			if !near(c.depth, tt.depth) {
				t.Fatalf("expected depth %v, got %v", tt.depth, c.depth)
			}
		})
	}
}

func TestStuckBodyIsNotPushedOut(t *testing.T) {
	level := NewLevel(floor(), cube.Box(-1, 0.5, -1, 1, 3, 1))
	b := NewBody(level, mgl32.Vec3{}, 0.8, 2, 0)

	b.Move(mgl32.Vec3{})
	if b.Stuck() || !near(b.Position().X(), 1.4) {
		t.Fatalf("expected body to be pushed out along X without being stuck, got %v", b.Position())
	}
	b.SetPosition(mgl32.Vec3{})
	b.Move(mgl32.Vec3{})
	if !b.Stuck() {
		t.Fatalf("expected body overlapping geometry twice in a row to be stuck")
	}
	b.SetPosition(mgl32.Vec3{})
	b.Move(mgl32.Vec3{})
	if pos := b.Position(); !near(pos.X(), 0) || !near(pos.Y(), 0) {
		t.Fatalf("expected stuck body to stay inside geometry, got %v", pos)
	}
}
