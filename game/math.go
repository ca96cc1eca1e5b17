package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// Facing returns the horizontal unit vector the given yaw points at.
func Facing(yaw float32) mgl32.Vec3 {
	return DirectionVector(yaw, 0)
}

// RelativeToYaw converts a 2D move axis (X = right, Y = forward) into a horizontal world vector
// for the given yaw. The magnitude of the axis is preserved.
func RelativeToYaw(axis mgl32.Vec2, yaw float32) mgl32.Vec3 {
	forward := Facing(yaw)
	right := forward.Cross(Up)
	return forward.Mul(axis.Y()).Add(right.Mul(axis.X()))
}

// Horizontal returns the vector with its Y component zeroed.
func Horizontal(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec.X(), 0, vec.Z()}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzLen returns the horizontal length of a vector.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// WithHorizontal returns vec with its X and Z components replaced by those of hz.
func WithHorizontal(vec, hz mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{hz.X(), vec.Y(), hz.Z()}
}

// NormalizeOr returns the normalized vector, or fallback if the vector is too short to normalize.
func NormalizeOr(vec, fallback mgl32.Vec3) mgl32.Vec3 {
	if vec.Len() < Epsilon {
		return fallback
	}
	return vec.Normalize()
}

// ClampLen returns vec scaled down so that its length does not exceed max.
func ClampLen(vec mgl32.Vec3, max float32) mgl32.Vec3 {
	if l := vec.Len(); l > max && l > 0 {
		return vec.Mul(max / l)
	}
	return vec
}

// ClampAxis returns a 2D axis clamped to the unit circle.
func ClampAxis(axis mgl32.Vec2) mgl32.Vec2 {
	if l := axis.Len(); l > 1 {
		return axis.Mul(1 / l)
	}
	return axis
}

// BlendFactor returns the interpolation factor of an exponential follower running at rate for dt
// seconds. The result is always in [0, 1).
func BlendFactor(rate, dt float32) float32 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math32.Exp(-rate*dt)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Reflect reflects vec about the plane with the given unit normal.
func Reflect(vec, normal mgl32.Vec3) mgl32.Vec3 {
	return vec.Sub(normal.Mul(2 * vec.Dot(normal)))
}

// AngleFromUp returns the angle in degrees between the given unit normal and world up.
func AngleFromUp(normal mgl32.Vec3) float32 {
	return mgl32.RadToDeg(math32.Acos(ClampFloat(normal.Dot(Up), -1, 1)))
}
