package movement

import "github.com/go-gl/mathgl/mgl32"

// Body is the collision collaborator the controller commits its displacement through.
type Body interface {
	// Move displaces the body by delta, resolving collisions against the level. It returns true if the
	// body is supported by ground after the move.
	Move(delta mgl32.Vec3) bool
	// Grounded returns true if the body is currently supported by ground.
	Grounded() bool
	// Position returns the centre of the bottom of the body.
	Position() mgl32.Vec3
	// SetHeight resizes the collider. The body may refuse to grow into geometry.
	SetHeight(height float32)
}

// Hit is the result of a successful probe.
type Hit struct {
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
	Distance float32
}

// Prober casts rays into the level.
type Prober interface {
	// Probe casts a ray from origin along the unit vector dir and returns the closest hit within dist.
	Probe(origin, dir mgl32.Vec3, dist float32) (Hit, bool)
}

// Camera receives the view values the controller computes every tick.
type Camera interface {
	SetPitch(pitch float32)
	SetOffset(offset float32)
}

// Pauser reports whether the simulation is paused. Paused ticks are no-ops.
type Pauser interface {
	Paused() bool
}
