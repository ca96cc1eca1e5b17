package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/fpsim/config"
	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/input"
)

// crouchHeld returns whether the crouch control counts as held under the configured crouch mode. In
// toggle mode the latched crouch state is used instead of the raw control.
func (c *Controller) crouchHeld(cmd input.Command) bool {
	if c.conf.CrouchMode == config.CrouchModeToggle {
		return c.crouching
	}
	return cmd.CrouchHeld
}

// tryStartSlide starts a slide if the actor is grounded, off cooldown, pressed crouch this tick while
// moving forward and is fast enough.
func (c *Controller) tryStartSlide(cmd input.Command) bool {
	if c.state != StateGrounded || c.timers.SlideCooldown > 0 || !cmd.CrouchPressed {
		return false
	}
	if cmd.Forward() <= c.conf.SlideInputDeadzone {
		return false
	}
	if speed := c.Speed(); speed < c.conf.SlideMinSpeed {
		c.Dbg.Notify(DebugModeSlide, true, "slide rejected: speed=%.4f < min=%.4f", speed, c.conf.SlideMinSpeed)
		return false
	}
	c.startSlide()
	return true
}

// startSlide begins a slide along the current horizontal velocity.
func (c *Controller) startSlide() {
	hz := game.Horizontal(c.vel)
	dir := game.NormalizeOr(hz, game.Facing(c.yaw))
	speed := math32.Min(hz.Len()*c.conf.SlideSpeedMultiplier, c.conf.SlideSpeed)

	c.slide = &SlideSession{Direction: dir, StartSpeed: speed}
	c.timers.SlideCooldown = c.conf.SlideCooldown
	c.crouching = false
	c.vel = game.WithHorizontal(c.vel, dir.Mul(speed))
	c.setState(StateSliding)
	c.Dbg.Notify(DebugModeSlide, true, "slide start: dir=%v speed=%.4f", dir, speed)
}

// sustainSlide decays the slide speed, steers it towards the input direction and ends it when it runs
// out of time or speed, or when crouch is released in hold mode.
func (c *Controller) sustainSlide(cmd input.Command, dt float32) {
	s := c.slide
	s.Elapsed = math32.Min(s.Elapsed+dt, c.conf.SlideMaxTime)
	target := math32.Max(s.StartSpeed-c.conf.SlideDecel*s.Elapsed, c.conf.SlideEndSpeed)

	if cmd.HasMove() {
		inputDir := game.NormalizeOr(game.RelativeToYaw(cmd.Move, c.yaw), s.Direction)
		steer := game.ClampFloat(c.conf.SlideSteer*dt, 0, 1)
		s.Direction = game.NormalizeOr(game.LerpVec3(s.Direction, inputDir, steer), s.Direction)
	}

	hz := game.LerpVec3(game.Horizontal(c.vel), s.Direction.Mul(target), game.BlendFactor(c.conf.SlideBlend, dt))
	c.vel = game.WithHorizontal(c.vel, hz)
	c.Dbg.Notify(DebugModeSlide, true, "slide: elapsed=%.4f target=%.4f speed=%.4f", s.Elapsed, target, hz.Len())

	var reason string
	switch {
	case s.Elapsed >= c.conf.SlideMaxTime:
		reason = "timeout"
	case hz.Len() < c.conf.SlideEndSpeed:
		reason = "too slow"
	case c.conf.CrouchMode == config.CrouchModeHold && !cmd.CrouchHeld:
		reason = "crouch released"
	default:
		return
	}
	c.endSlide(cmd, reason)
	c.setState(StateGrounded)
}

// endSlide ends the current slide. The actor falls back into crouching if crouch is still held. The
// primary state is left to the caller.
func (c *Controller) endSlide(cmd input.Command, reason string) {
	if c.slide == nil {
		return
	}
	c.Dbg.Notify(DebugModeSlide, true, "slide end (%s) after %.4fs", reason, c.slide.Elapsed)
	c.slide = nil
	c.crouching = c.conf.CrouchMode == config.CrouchModeHold && cmd.CrouchHeld
}
