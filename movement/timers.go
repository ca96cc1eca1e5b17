package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/fpsim/input"
)

// updateTimers advances every countdown by dt. It runs before anything else in the tick reads them.
func (c *Controller) updateTimers(cmd input.Command, contact bool, dt float32) {
	if contact {
		c.timers.Coyote = c.conf.CoyoteTime
	} else {
		c.timers.Coyote = countdown(c.timers.Coyote, dt)
	}
	c.timers.JumpBuffer = countdown(c.timers.JumpBuffer, dt)
	c.timers.SlideCooldown = countdown(c.timers.SlideCooldown, dt)
	c.timers.Bhop = countdown(c.timers.Bhop, dt)

	if cmd.JumpPressed {
		c.timers.JumpBuffer = c.conf.JumpBuffer
	}
	c.Dbg.Notify(DebugModeTimers, true, "coyote=%.4f jumpBuffer=%.4f slideCooldown=%.4f bhop=%.4f", c.timers.Coyote, c.timers.JumpBuffer, c.timers.SlideCooldown, c.timers.Bhop)
}

func countdown(v, dt float32) float32 {
	return math32.Max(v-dt, 0)
}
