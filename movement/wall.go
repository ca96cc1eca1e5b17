package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/fpsim/game"
)

// tryDeflect probes ahead of an airborne actor holding a buffered jump and bounces it off a steep
// enough surface. Only one deflection is allowed per airtime.
func (c *Controller) tryDeflect() bool {
	if c.prober == nil || c.state != StateAirborne || c.timers.JumpBuffer <= 0 || c.deflected {
		return false
	}

	pos := c.Position()
	origin := pos.Add(game.Up.Mul(c.conf.WallProbeHeight * c.capsule.Height))
	dir := game.NormalizeOr(game.Horizontal(c.vel), game.Facing(c.yaw))
	hit, ok := c.prober.Probe(origin, dir, c.conf.WallProbeDistance)
	if !ok {
		return false
	}
	if angle := game.AngleFromUp(hit.Normal); angle <= c.conf.WallMinAngle {
		c.Dbg.Notify(DebugModeWall, true, "surface too flat: normal=%v angle=%.2f", hit.Normal, angle)
		return false
	}

	bounce := game.NormalizeOr(game.Reflect(c.vel, hit.Normal), hit.Normal)
	bounce[1] = game.ClampFloat(bounce[1], c.conf.WallUpMin, c.conf.WallUpMax)
	bounce = game.NormalizeOr(bounce, hit.Normal).Mul(c.conf.WallBounceForce)
	bounce[1] = math32.Max(bounce[1], c.launchSpeed())

	c.vel = bounce
	c.timers.JumpBuffer = 0
	c.deflected = true
	c.Dbg.Notify(DebugModeWall, true, "deflected off %v at %v: vel=%v", hit.Normal, hit.Point, bounce)
	return true
}
