package movement

import "github.com/go-gl/mathgl/mgl32"

// State is the primary movement state of an actor. Crouching and sprinting are tracked separately as
// modifiers.
type State byte

const (
	StateGrounded State = iota
	StateAirborne
	StateSliding
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	case StateSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Timers holds the countdowns of an actor, in seconds. None of them ever go below zero.
type Timers struct {
	Coyote        float32
	JumpBuffer    float32
	SlideCooldown float32
	Bhop          float32
}

// SlideSession is the state of a slide in progress.
type SlideSession struct {
	// Direction is the horizontal unit vector the slide is travelling along.
	Direction  mgl32.Vec3
	StartSpeed float32
	Elapsed    float32
}

// HopChain tracks consecutive chained jumps.
type HopChain struct {
	Count int
	// FromSlide is true if the chain was started by jumping out of a slide.
	FromSlide bool
}

// CapsuleProfile is the collider height and camera offset of an actor along with the values they
// are moving towards.
type CapsuleProfile struct {
	TargetHeight float32
	Height       float32
	TargetOffset float32
	Offset       float32
}
