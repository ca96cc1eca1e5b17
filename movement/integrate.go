package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/input"
)

// targetSpeed returns the ground speed the actor is trying to reach. Crouching takes priority over
// sprinting, which takes priority over walking.
func (c *Controller) targetSpeed(cmd input.Command) float32 {
	switch {
	case c.crouching:
		return c.conf.CrouchSpeed
	case cmd.SprintHeld && cmd.Forward() > 0:
		return c.conf.SprintSpeed
	default:
		return c.conf.WalkSpeed
	}
}

// chaining returns true while a hop chain is in progress.
func (c *Controller) chaining() bool {
	return c.hop.Count > 0
}

// integrateGround blends the horizontal velocity towards the wished velocity, or towards rest if there
// is no input and no hop chain to preserve.
func (c *Controller) integrateGround(cmd input.Command, dt float32) {
	hz := game.Horizontal(c.vel)
	switch {
	case cmd.HasMove():
		wish := game.RelativeToYaw(cmd.Move, c.yaw).Mul(c.targetSpeed(cmd))
		hz = game.LerpVec3(hz, wish, game.BlendFactor(c.conf.GroundAccel, dt))
	case !c.chaining():
		hz = game.LerpVec3(hz, mgl32.Vec3{}, game.BlendFactor(c.conf.GroundFriction, dt))
	}
	c.vel = game.WithHorizontal(c.vel, hz)
}

// integrateAir accelerates along the wish direction up to a ceiling, applies drag when not chaining and
// finally clamps horizontal speed.
func (c *Controller) integrateAir(cmd input.Command, dt float32) {
	hz := game.Horizontal(c.vel)
	if cmd.HasMove() {
		wishDir := game.NormalizeOr(game.RelativeToYaw(cmd.Move, c.yaw), game.Facing(c.yaw))
		accel, ceiling := c.conf.AirAccel, c.targetSpeed(cmd)
		if c.chaining() {
			accel *= 2
			ceiling = c.conf.MaxBhopSpeed
		}

		if add := ceiling - hz.Dot(wishDir); add > 0 {
			accelSpeed := math32.Min(accel*dt*ceiling, add)
			hz = hz.Add(wishDir.Mul(accelSpeed))
		}
	}
	if !c.chaining() {
		hz = hz.Mul(c.conf.AirDrag)
	}
	c.vel = game.WithHorizontal(c.vel, game.ClampLen(hz, c.conf.MaxBhopSpeed))
}

// integrateVertical applies gravity while airborne and pins the actor to the ground otherwise.
func (c *Controller) integrateVertical(dt float32) {
	if c.state == StateAirborne {
		g := c.conf.Gravity
		if c.vel[1] < 0 {
			g *= c.conf.FallGravityMultiplier
		}
		c.vel[1] = math32.Max(c.vel[1]+g*dt, -c.conf.MaxFallSpeed)
		return
	}
	if c.vel[1] <= 0 {
		c.vel[1] = c.conf.GroundStick
	}
}
