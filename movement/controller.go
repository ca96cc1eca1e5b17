package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/assert"
	"github.com/oomph-ac/fpsim/config"
	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/input"
	"github.com/sirupsen/logrus"
)

// Controller simulates the movement of a single actor. It is not safe for concurrent use.
type Controller struct {
	conf config.Config

	body   Body
	prober Prober
	camera Camera
	pauser Pauser

	Dbg *Debugger

	state     State
	crouching bool
	sprinting bool
	grounded  bool
	deflected bool

	vel        mgl32.Vec3
	yaw, pitch float32

	timers  Timers
	slide   *SlideSession
	hop     HopChain
	capsule CapsuleProfile

	ticks uint64
}

// NewController creates a controller for an actor backed by body. The body may be nil, in which case
// displacement is never committed.
func NewController(conf config.Config, body Body) *Controller {
	c := &Controller{
		conf: conf,
		body: body,
		Dbg:  NewDebugger(nil),
		capsule: CapsuleProfile{
			TargetHeight: conf.StandHeight,
			Height:       conf.StandHeight,
			TargetOffset: conf.StandCameraOffset,
			Offset:       conf.StandCameraOffset,
		},
		state: StateAirborne,
	}
	if body != nil && body.Grounded() {
		c.grounded = true
		c.state = StateGrounded
	}
	return c
}

// SetProber sets the prober used for wall deflection. A nil prober disables it.
func (c *Controller) SetProber(p Prober) {
	c.prober = p
}

// SetCamera sets the camera receiving pitch and offset updates.
func (c *Controller) SetCamera(cam Camera) {
	c.camera = cam
}

// SetPauser sets the pause source consulted at the start of every tick.
func (c *Controller) SetPauser(p Pauser) {
	c.pauser = p
}

// SetLogger replaces the logger debug output is written to, keeping the enabled debug modes.
func (c *Controller) SetLogger(log logrus.FieldLogger) {
	modes := c.Dbg.modes
	c.Dbg = NewDebugger(log)
	c.Dbg.modes = modes
}

// Tick advances the simulation by dt seconds using the input command of this tick.
func (c *Controller) Tick(cmd input.Command, dt float32) {
	assert.IsTrue(dt > 0, "tick delta must be positive (got %v)", dt)
	if c.pauser != nil && c.pauser.Paused() {
		return
	}
	c.ticks++

	c.Look(cmd.Look)
	contact := c.grounded
	if c.body != nil {
		contact = c.body.Grounded()
	}

	c.updateTimers(cmd, contact, dt)
	landed := c.resolveGround(cmd, contact)

	// A slide entered on landing counts as started this tick.
	slideStarted := c.tryStartSlide(cmd) || (landed && c.state == StateSliding)
	c.updateCrouch(cmd, slideStarted)

	// The launch tick keeps the velocity set by the jump.
	launched := c.tryJump(cmd)
	switch {
	case launched, slideStarted:
	case c.state == StateSliding:
		c.sustainSlide(cmd, dt)
	case c.state == StateAirborne:
		c.integrateAir(cmd, dt)
	case !landed:
		c.integrateGround(cmd, dt)
	}

	if c.tryDeflect() {
		launched = true
	}
	if !launched {
		c.integrateVertical(dt)
	}
	c.sprinting = c.state != StateSliding && !c.crouching && cmd.SprintHeld && cmd.Forward() > 0

	c.updateCapsule(dt)
	c.commit(dt)
}

// resolveGround transitions between grounded and airborne based on ground contact. It returns true if
// the actor landed this tick.
func (c *Controller) resolveGround(cmd input.Command, contact bool) bool {
	switch {
	case contact && c.state == StateAirborne:
		c.land(cmd)
		return true
	case !contact && c.state != StateAirborne:
		c.setState(StateAirborne)
		c.endSlide(cmd, "left ground")
	case contact && c.timers.Bhop <= 0 && c.hop.Count > 0:
		c.Dbg.Notify(DebugModeJump, true, "hop chain of %d lapsed", c.hop.Count)
		c.hop = HopChain{}
	}
	return false
}

func (c *Controller) land(cmd input.Command) {
	hz := game.Horizontal(c.vel)
	if speed := hz.Len(); speed > c.conf.WalkSpeed {
		c.vel = game.WithHorizontal(c.vel, hz.Mul(c.conf.LandingBoost))
		c.Dbg.Notify(DebugModeState, true, "landing boost: %.4f -> %.4f", speed, speed*c.conf.LandingBoost)
	}
	c.deflected = false
	c.timers.Bhop = c.conf.BhopWindow

	if c.crouchHeld(cmd) && c.Speed() >= c.conf.SlideMinSpeed && c.timers.SlideCooldown <= 0 {
		c.startSlide()
		return
	}
	c.setState(StateGrounded)
}

// updateCrouch applies the crouch control according to the crouch mode. A slide always supersedes
// voluntary crouching.
func (c *Controller) updateCrouch(cmd input.Command, slideStarted bool) {
	if c.state == StateSliding || slideStarted {
		return
	}
	switch c.conf.CrouchMode {
	case config.CrouchModeToggle:
		if cmd.CrouchPressed {
			c.crouching = !c.crouching
		}
	default:
		c.crouching = cmd.CrouchHeld
	}
}

// commit moves the body by the velocity of this tick. Velocity lost to collisions is removed so that
// it does not build up against geometry.
func (c *Controller) commit(dt float32) {
	if c.body == nil {
		return
	}
	before := c.body.Position()
	delta := c.vel.Mul(dt)
	c.grounded = c.body.Move(delta)
	moved := c.body.Position().Sub(before)

	for _, axis := range [2]int{0, 2} {
		if math32.Abs(moved[axis]-delta[axis]) > game.Epsilon {
			c.vel[axis] = moved[axis] / dt
		}
	}
	if delta[1] > 0 && moved[1] < delta[1]-game.Epsilon {
		c.Dbg.Notify(DebugModeState, true, "head bump: requested=%.4f moved=%.4f", delta[1], moved[1])
		c.vel[1] = 0
	}
}

// Look rotates the view by the given look delta scaled by the look sensitivity.
func (c *Controller) Look(delta mgl32.Vec2) {
	if delta == (mgl32.Vec2{}) {
		return
	}
	c.SetYaw(c.yaw + delta.X()*c.conf.LookSensitivity)
	c.pitch = game.ClampFloat(c.pitch-delta.Y()*c.conf.LookSensitivity, -c.conf.PitchLimit, c.conf.PitchLimit)
}

// SetYaw sets the yaw of the actor in degrees, wrapped to [0, 360).
func (c *Controller) SetYaw(yaw float32) {
	yaw = math32.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	c.yaw = yaw
}

// SetVelocity overwrites the velocity of the actor.
func (c *Controller) SetVelocity(vel mgl32.Vec3) {
	c.vel = vel
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.Dbg.Notify(DebugModeState, true, "%s -> %s (tick %d)", c.state, s, c.ticks)
	c.state = s
}

// Config returns the configuration of the controller.
func (c *Controller) Config() config.Config {
	return c.conf
}

// State returns the primary movement state.
func (c *Controller) State() State {
	return c.state
}

// Velocity returns the current velocity.
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.vel
}

// Speed returns the current horizontal speed.
func (c *Controller) Speed() float32 {
	return game.Vec3HzLen(c.vel)
}

// NormalizedSpeed returns the horizontal speed relative to the sprint speed, in [0, 1].
func (c *Controller) NormalizedSpeed() float32 {
	if c.conf.SprintSpeed <= 0 {
		return 0
	}
	return game.ClampFloat(c.Speed()/c.conf.SprintSpeed, 0, 1)
}

// Sliding returns true while a slide is in progress.
func (c *Controller) Sliding() bool {
	return c.state == StateSliding
}

// Sprinting returns true if the actor sprinted this tick.
func (c *Controller) Sprinting() bool {
	return c.sprinting
}

// Crouching returns true if the actor is voluntarily crouching.
func (c *Controller) Crouching() bool {
	return c.crouching
}

func (c *Controller) Yaw() float32 {
	return c.yaw
}

func (c *Controller) Pitch() float32 {
	return c.pitch
}

// CameraOffset returns the current camera offset from the top of the collider.
func (c *Controller) CameraOffset() float32 {
	return c.capsule.Offset
}

// Height returns the current collider height.
func (c *Controller) Height() float32 {
	return c.capsule.Height
}

// Capsule returns the full capsule profile.
func (c *Controller) Capsule() CapsuleProfile {
	return c.capsule
}

func (c *Controller) HopCount() int {
	return c.hop.Count
}

func (c *Controller) Timers() Timers {
	return c.timers
}

// Slide returns a copy of the current slide session, or false if the actor is not sliding.
func (c *Controller) Slide() (SlideSession, bool) {
	if c.slide == nil {
		return SlideSession{}, false
	}
	return *c.slide, true
}

// Position returns the position of the body, or the zero vector if there is none.
func (c *Controller) Position() mgl32.Vec3 {
	if c.body == nil {
		return mgl32.Vec3{}
	}
	return c.body.Position()
}

// Ticks returns the number of ticks simulated, excluding paused ticks.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}
