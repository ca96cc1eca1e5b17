package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/movement"
)

// Level is a static collection of solid boxes.
type Level struct {
	boxes []cube.BBox
}

// NewLevel returns a level made of the given boxes.
func NewLevel(boxes ...cube.BBox) *Level {
	l := &Level{}
	l.Add(boxes...)
	return l
}

// Add adds solid boxes to the level. Boxes with zero volume are ignored.
func (l *Level) Add(boxes ...cube.BBox) {
	for _, bb := range boxes {
		if BBHasZeroVolume(bb) {
			continue
		}
		l.boxes = append(l.boxes, bb)
	}
}

// Boxes returns every box in the level.
func (l *Level) Boxes() []cube.BBox {
	return l.boxes
}

// NearbyBBoxes returns the boxes of the level that intersect with aabb grown by a small margin.
func (l *Level) NearbyBBoxes(aabb cube.BBox) []cube.BBox {
	search := aabb.Grow(1e-3)
	var list []cube.BBox
	for _, bb := range l.boxes {
		if bb.IntersectsWith(search) {
			list = append(list, bb)
		}
	}
	return list
}

// Probe casts a ray from origin along dir and returns the closest surface hit within dist.
func (l *Level) Probe(origin, dir mgl32.Vec3, dist float32) (movement.Hit, bool) {
	end := origin.Add(dir.Mul(dist))

	var (
		closest movement.Hit
		found   bool
	)
	for _, bb := range l.boxes {
		res, ok := trace.BBoxIntercept(bb, origin, end)
		if !ok {
			continue
		}
		d := res.Position().Sub(origin).Len()
		if found && d >= closest.Distance {
			continue
		}
		closest = movement.Hit{Point: res.Position(), Normal: faceNormal(res.Face()), Distance: d}
		found = true
	}
	return closest, found
}

// faceNormal returns the outward unit normal of a box face.
func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}
