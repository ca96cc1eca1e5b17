package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/input"
)

// launchSpeed returns the vertical speed needed to reach the configured jump height.
func (c *Controller) launchSpeed() float32 {
	return math32.Sqrt(2 * c.conf.JumpHeight * math32.Abs(c.conf.Gravity))
}

// tryJump executes a jump if one is buffered and the actor is grounded or within coyote time. The
// order of the checks below decides which kind of jump is performed.
func (c *Controller) tryJump(cmd input.Command) bool {
	if c.timers.JumpBuffer <= 0 || c.timers.Coyote <= 0 {
		return false
	}

	launch := c.launchSpeed()
	hz := game.Horizontal(c.vel)
	speed := hz.Len()
	switch {
	case c.state == StateSliding && c.slide != nil:
		launch *= c.conf.SlideJumpBoost
		if minSpeed := c.conf.SlideJumpMinFraction * c.conf.SlideSpeed; speed < minSpeed {
			hz = c.slide.Direction.Mul(minSpeed)
		}
		c.endSlide(cmd, "jump")
		c.hop = HopChain{Count: 1, FromSlide: true}
		c.Dbg.Notify(DebugModeJump, true, "slide jump: launch=%.4f speed=%.4f", launch, hz.Len())
	case c.crouching && c.timers.Bhop > 0:
		if speed > c.conf.CrouchSpeed {
			hz = c.hopGain(hz, speed)
		} else {
			c.hop = HopChain{}
		}
		c.Dbg.Notify(DebugModeJump, true, "crouch hop: count=%d speed=%.4f", c.hop.Count, hz.Len())
	case c.hop.Count > 0 && c.hop.FromSlide && c.timers.Bhop > 0:
		hz = c.hopGain(hz, speed)
		c.Dbg.Notify(DebugModeJump, true, "chained hop: count=%d speed=%.4f", c.hop.Count, hz.Len())
	default:
		c.hop = HopChain{}
		c.Dbg.Notify(DebugModeJump, true, "jump: launch=%.4f", launch)
	}

	c.vel = game.WithHorizontal(c.vel, hz)
	c.vel[1] = launch
	c.timers.JumpBuffer, c.timers.Coyote, c.timers.Bhop = 0, 0, 0
	c.setState(StateAirborne)
	return true
}

// hopGain raises the horizontal speed by the hop gain up to the hop speed cap and extends the chain.
func (c *Controller) hopGain(hz mgl32.Vec3, speed float32) mgl32.Vec3 {
	newSpeed := math32.Min(speed+c.conf.BhopSpeedGain, c.conf.MaxBhopSpeed)
	c.hop.Count++
	return game.NormalizeOr(hz, game.Facing(c.yaw)).Mul(newSpeed)
}
