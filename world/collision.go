package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// contact is the outcome of moving a box by a velocity against a single stationary box.
type contact struct {
	// depth is how far the boxes already overlap, zero if they do not.
	depth float32
	// blocked is the velocity stopped at the face of the stationary box.
	blocked mgl32.Vec3
	// escape is blocked, except that an overlapping box is also pushed out along its shallowest axis.
	escape mgl32.Vec3
}

// span is the relation of two boxes on one axis.
type span struct {
	// gap is the free distance between the boxes, or the overlap depth if they intersect.
	gap float32
	// dir is the direction the moving box travels to close the gap, or to leave the overlap.
	dir   float32
	apart bool
}

func spanOn(stationary, moving cube.BBox, axis int) span {
	ahead := snap(moving.Max()[axis] - stationary.Min()[axis])
	behind := snap(stationary.Max()[axis] - moving.Min()[axis])
	switch {
	case ahead <= 0:
		return span{gap: -ahead, dir: 1, apart: true}
	case behind <= 0:
		return span{gap: -behind, dir: -1, apart: true}
	case ahead < behind:
		return span{gap: ahead, dir: -1}
	default:
		return span{gap: behind, dir: 1}
	}
}

func snap(v float32) float32 {
	if math32.Abs(v) <= 1e-7 {
		return 0
	}
	return v
}

// collide moves the box moving by vel against stationary. vel is expected to be non-zero on one axis
// only, as boxes that are apart on a single axis can only meet by moving along it.
func collide(stationary, moving cube.BBox, vel mgl32.Vec3) contact {
	c := contact{blocked: vel, escape: vel}
	if BBHasZeroVolume(stationary) {
		return c
	}

	var spans [3]span
	apart, axis := 0, 0
	for i := range spans {
		spans[i] = spanOn(stationary, moving, i)
		if spans[i].apart {
			apart++
			axis = i
		}
	}

	switch apart {
	case 0:
		for i := 1; i < 3; i++ {
			if spans[i].gap < spans[axis].gap {
				axis = i
			}
		}
		s := spans[axis]
		c.depth = s.gap
		if push := s.gap * s.dir; push > 0 {
			c.escape[axis] = math32.Max(push, vel[axis])
		} else {
			c.escape[axis] = math32.Min(push, vel[axis])
		}
	case 1:
		if s := spans[axis]; vel[axis]*s.dir > s.gap {
			c.blocked[axis] = s.gap * s.dir
			c.escape[axis] = c.blocked[axis]
		}
	}
	return c
}

// BBHasZeroVolume returns true if the bounding box has zero volume.
func BBHasZeroVolume(bb cube.BBox) bool {
	return bb.Min() == bb.Max()
}
