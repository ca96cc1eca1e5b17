package movement

import "github.com/oomph-ac/fpsim/game"

func (c *Controller) updateCapsule(dt float32) {
	p := &c.capsule
	if c.state == StateSliding || c.crouching {
		p.TargetHeight, p.TargetOffset = c.conf.CrouchHeight, c.conf.CrouchCameraOffset
	} else {
		p.TargetHeight, p.TargetOffset = c.conf.StandHeight, c.conf.StandCameraOffset
	}

	t := game.BlendFactor(c.conf.CapsuleSmoothing, dt)
	p.Height = game.Lerp(p.Height, p.TargetHeight, t)
	p.Offset = game.Lerp(p.Offset, p.TargetOffset, t)

	if c.body != nil {
		c.body.SetHeight(p.Height)
	}
	if c.camera != nil {
		c.camera.SetPitch(c.pitch)
		c.camera.SetOffset(p.Offset)
	}
}
