package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/game"
)

// Body is an upright box collider moving through a Level. Its position is the centre of the bottom
// of the box.
type Body struct {
	level *Level

	pos        mgl32.Vec3
	width      float32
	height     float32
	stepHeight float32
	onGround   bool

	// stuck is set once the body has been inside geometry for two moves in a row. Stuck bodies only
	// have their velocity clipped and are not pushed out.
	stuck            bool
	penetratedBefore bool

	xCollision, yCollision, zCollision bool
}

// NewBody creates a body at pos in the level.
func NewBody(level *Level, pos mgl32.Vec3, width, height, stepHeight float32) *Body {
	b := &Body{level: level, pos: pos, width: width, height: height, stepHeight: stepHeight}
	b.onGround = b.supported()
	return b
}

// BoundingBox returns the collision box of the body at its current position.
func (b *Body) BoundingBox() cube.BBox {
	return b.boxAt(b.pos, b.height)
}

func (b *Body) boxAt(pos mgl32.Vec3, height float32) cube.BBox {
	w := b.width / 2
	return cube.Box(pos[0]-w, pos[1], pos[2]-w, pos[0]+w, pos[1]+height, pos[2]+w)
}

// supported returns true if there is a box directly underneath the body.
func (b *Body) supported() bool {
	feet := b.BoundingBox()
	below := cube.Box(feet.Min()[0], feet.Min()[1]-game.FloorEpsilon*10, feet.Min()[2], feet.Max()[0], feet.Min()[1], feet.Max()[2])
	for _, bb := range b.level.NearbyBBoxes(below) {
		if bb.Max()[1] <= feet.Min()[1]+game.FloorEpsilon*10 && bb.IntersectsWith(below) {
			return true
		}
	}
	return false
}

// Move displaces the body by delta, clipping against the level one axis at a time in the order Y, X,
// Z. A grounded body that is blocked horizontally attempts to step up onto the obstacle.
func (b *Body) Move(delta mgl32.Vec3) bool {
	box := b.BoundingBox()
	boxes := b.level.NearbyBBoxes(box.Extend(delta))

	oneWay := b.stuck
	var depth float32
	box, moved := resolve(box, boxes, oneWay, &depth, mgl32.Vec3{0, delta[1]}, mgl32.Vec3{delta[0]}, mgl32.Vec3{0, 0, delta[2]})

	penetrated := depth >= game.Epsilon
	b.stuck = b.penetratedBefore && penetrated
	b.penetratedBefore = penetrated

	blockedY := delta[1] != moved[1]
	onGround := b.onGround || (blockedY && delta[1] < 0)
	if onGround && (delta[0] != moved[0] || delta[2] != moved[2]) && b.stepHeight > 0 {
		if stepBox, stepped, ok := b.tryStep(delta, oneWay); ok && game.Vec3HzDistSqr(moved) < game.Vec3HzDistSqr(stepped) {
			box, moved = stepBox, stepped
		}
	}

	b.pos = mgl32.Vec3{
		(box.Min()[0] + box.Max()[0]) * 0.5,
		box.Min()[1],
		(box.Min()[2] + box.Max()[2]) * 0.5,
	}

	b.xCollision = math32.Abs(delta[0]-moved[0]) >= game.FloorEpsilon
	b.yCollision = math32.Abs(delta[1]-moved[1]) >= game.FloorEpsilon
	b.zCollision = math32.Abs(delta[2]-moved[2]) >= game.FloorEpsilon
	b.onGround = (b.yCollision && delta[1] < 0) || (b.onGround && !b.yCollision && math32.Abs(delta[1]) <= game.FloorEpsilon)
	return b.onGround
}

// resolve applies each single-axis move in order, clipping it against boxes and translating box by
// the result. A one-way resolve only stops the box at faces and never pushes it out of an overlap.
// The deepest overlap met is written to depth if it is non-nil.
func resolve(box cube.BBox, boxes []cube.BBox, oneWay bool, depth *float32, moves ...mgl32.Vec3) (cube.BBox, mgl32.Vec3) {
	var total mgl32.Vec3
	for _, vel := range moves {
		for i := len(boxes) - 1; i >= 0; i-- {
			c := collide(boxes[i], box, vel)
			if depth != nil {
				*depth = math32.Max(*depth, c.depth)
			}
			if oneWay {
				vel = c.blocked
			} else {
				vel = c.escape
			}
		}
		box = box.Translate(vel)
		total = total.Add(vel)
	}
	return box, total
}

// tryStep moves the body up by the step height, across by the horizontal delta and back down, returning
// the resulting box and displacement. The step fails if the box ends up inside geometry.
func (b *Body) tryStep(delta mgl32.Vec3, oneWay bool) (cube.BBox, mgl32.Vec3, bool) {
	box := b.BoundingBox()
	boxes := b.level.NearbyBBoxes(box.Extend(delta).Extend(mgl32.Vec3{0, b.stepHeight}))

	box, up := resolve(box, boxes, oneWay, nil, mgl32.Vec3{0, b.stepHeight})
	box, across := resolve(box, boxes, oneWay, nil, mgl32.Vec3{delta[0]}, mgl32.Vec3{0, 0, delta[2]})
	box, down := resolve(box, boxes, oneWay, nil, mgl32.Vec3{0, -up[1] + math32.Min(delta[1], 0)})

	inner := box.Grow(-game.Epsilon)
	for _, bb := range b.level.NearbyBBoxes(inner) {
		if bb.IntersectsWith(inner) {
			return box, mgl32.Vec3{}, false
		}
	}
	return box, up.Add(across).Add(down), true
}

// Grounded returns true if the body was supported after its last move.
func (b *Body) Grounded() bool {
	return b.onGround
}

// Position returns the centre of the bottom of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition teleports the body and recomputes ground support.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
	b.onGround = b.supported()
}

// Height returns the current height of the collider.
func (b *Body) Height() float32 {
	return b.height
}

// SetHeight resizes the collider. Growing is refused while it would push the body into geometry, so a
// crouched body under a low ceiling stays crouched.
func (b *Body) SetHeight(height float32) {
	if height > b.height {
		grown := b.boxAt(b.pos, height).Grow(-game.Epsilon)
		for _, bb := range b.level.NearbyBBoxes(grown) {
			if bb.IntersectsWith(grown) {
				return
			}
		}
	}
	b.height = height
}

// Stuck returns true if the body has been inside geometry for more than one move.
func (b *Body) Stuck() bool {
	return b.stuck
}

// Collisions returns whether the last move was blocked on each axis.
func (b *Body) Collisions() (x, y, z bool) {
	return b.xCollision, b.yCollision, b.zCollision
}
