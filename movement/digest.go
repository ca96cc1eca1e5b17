package movement

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Digest returns a hash of the full simulation state of the controller. Two controllers fed the same
// input from the same starting state produce the same digest.
func (c *Controller) Digest() uint64 {
	h := xxh3.New()
	c.WriteState(h)
	return h.Sum64()
}

// WriteState writes a binary encoding of the simulation state to w.
func (c *Controller) WriteState(w io.Writer) {
	var buf [8]byte
	putFloat := func(f float32) {
		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(f))
		_, _ = w.Write(buf[:4])
	}
	putVec := func(v mgl32.Vec3) {
		putFloat(v[0])
		putFloat(v[1])
		putFloat(v[2])
	}
	putBool := func(b bool) {
		buf[0] = 0
		if b {
			buf[0] = 1
		}
		_, _ = w.Write(buf[:1])
	}

	binary.LittleEndian.PutUint64(buf[:], c.ticks)
	_, _ = w.Write(buf[:])
	_, _ = w.Write([]byte{byte(c.state)})
	putBool(c.crouching)
	putBool(c.sprinting)
	putBool(c.grounded)
	putBool(c.deflected)

	putVec(c.Position())
	putVec(c.vel)
	putFloat(c.yaw)
	putFloat(c.pitch)

	putFloat(c.timers.Coyote)
	putFloat(c.timers.JumpBuffer)
	putFloat(c.timers.SlideCooldown)
	putFloat(c.timers.Bhop)

	putBool(c.slide != nil)
	if c.slide != nil {
		putVec(c.slide.Direction)
		putFloat(c.slide.StartSpeed)
		putFloat(c.slide.Elapsed)
	}
	binary.LittleEndian.PutUint32(buf[:4], uint32(c.hop.Count))
	_, _ = w.Write(buf[:4])
	putBool(c.hop.FromSlide)

	putFloat(c.capsule.Height)
	putFloat(c.capsule.Offset)
}
