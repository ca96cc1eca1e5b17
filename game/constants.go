package game

// Default tuning values, in metres and seconds. Gravity is signed (negative is down).
const (
	DefaultWalkSpeed            = float32(7)
	DefaultSprintSpeed          = float32(11)
	DefaultCrouchSpeed          = float32(4)
	DefaultSlideMinSpeed        = float32(8)
	DefaultSlideSpeed           = float32(16)
	DefaultSlideSpeedMultiplier = float32(1.3)
	DefaultSlideDecel           = float32(6)
	DefaultSlideMaxTime         = float32(1.2)
	DefaultSlideEndSpeed        = float32(5)
	DefaultSlideCooldown        = float32(0.6)
	DefaultSlideJumpBoost       = float32(1.2)
	DefaultJumpHeight           = float32(1.5)
	DefaultGravity              = float32(-25)
	DefaultMaxFallSpeed         = float32(50)
	DefaultMaxBhopSpeed         = float32(20)
	DefaultBhopWindow           = float32(0.25)
	DefaultBhopSpeedGain        = float32(1)
	DefaultCoyoteTime           = float32(0.15)
	DefaultJumpBuffer           = float32(0.15)
	DefaultGroundAccel          = float32(12)
	DefaultAirAccel             = float32(2)
	DefaultGroundFriction       = float32(10)
	DefaultAirDrag              = float32(0.995)
	DefaultWallBounceForce      = float32(12)

	DefaultFallGravityMultiplier = float32(2)
	DefaultGroundStick           = float32(-2)
	DefaultLandingBoost          = float32(1.05)
	DefaultSlideInputDeadzone    = float32(0.1)
	DefaultSlideSteer            = float32(3)
	DefaultSlideBlend            = float32(10)
	DefaultSlideJumpMinFraction  = float32(0.7)

	DefaultStandHeight        = float32(2)
	DefaultCrouchHeight       = float32(1.2)
	DefaultStandCameraOffset  = float32(0.8)
	DefaultCrouchCameraOffset = float32(0.35)
	DefaultCapsuleSmoothing   = float32(12)
	DefaultCapsuleWidth       = float32(0.8)
	DefaultStepHeight         = float32(0.35)

	DefaultWallProbeDistance = float32(0.8)
	DefaultWallProbeHeight   = float32(0.7)
	DefaultWallMinAngle      = float32(60)
	DefaultWallUpMin         = float32(0.2)
	DefaultWallUpMax         = float32(0.6)

	DefaultLookSensitivity = float32(0.1)
	DefaultPitchLimit      = float32(89)
)

const (
	// Epsilon is the length below which a vector is treated as degenerate.
	Epsilon = float32(1e-4)
	// FloorEpsilon is the collision tolerance used when resolving contact.
	FloorEpsilon = float32(1e-5)
)
