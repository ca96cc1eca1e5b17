package input

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/game"
)

// Logical action names a Source is queried with.
const (
	ActionMove   = "move"
	ActionLook   = "look"
	ActionJump   = "jump"
	ActionSprint = "sprint"
	ActionCrouch = "crouch"
)

// Source provides raw input values keyed by logical action name. Unknown actions return zero values.
type Source interface {
	Axis(action string) mgl32.Vec2
	Button(action string) bool
}

// Command is the normalized input of a single tick.
type Command struct {
	// Move is the movement axis, X to the right and Y forward, clamped to the unit circle.
	Move mgl32.Vec2
	// Look is the raw look delta for this tick.
	Look mgl32.Vec2

	JumpPressed   bool
	CrouchPressed bool

	JumpHeld   bool
	SprintHeld bool
	CrouchHeld bool
}

// HasMove returns true if the command carries any movement input.
func (c Command) HasMove() bool {
	return c.Move.Len() > game.Epsilon
}

// Forward returns the forward component of the movement axis.
func (c Command) Forward() float32 {
	return c.Move.Y()
}

// Sampler turns a Source into one Command per tick. Edges are computed when Poll is called and cached,
// so every read of Command within the same tick returns the same value.
type Sampler struct {
	src  Source
	held *orderedmap.OrderedMap[string, bool]

	cmd  Command
	tick uint64
}

// NewSampler returns a Sampler reading from src. src may be nil, in which case every command is zero.
func NewSampler(src Source) *Sampler {
	held := orderedmap.NewOrderedMap[string, bool]()
	for _, action := range []string{ActionJump, ActionSprint, ActionCrouch} {
		held.Set(action, false)
	}
	return &Sampler{src: src, held: held}
}

// Poll reads the source once and caches the resulting command.
func (s *Sampler) Poll() Command {
	s.tick++

	var cmd Command
	if s.src != nil {
		cmd.Move = game.ClampAxis(s.src.Axis(ActionMove))
		cmd.Look = s.src.Axis(ActionLook)
	}
	cmd.JumpHeld, cmd.JumpPressed = s.button(ActionJump)
	cmd.SprintHeld, _ = s.button(ActionSprint)
	cmd.CrouchHeld, cmd.CrouchPressed = s.button(ActionCrouch)

	s.cmd = cmd
	return cmd
}

// button returns whether the action is held and whether it went down this tick.
func (s *Sampler) button(action string) (held, pressed bool) {
	if s.src != nil {
		held = s.src.Button(action)
	}
	wasHeld := s.held.GetOrDefault(action, false)
	s.held.Set(action, held)
	return held, held && !wasHeld
}

// Command returns the command produced by the last Poll.
func (s *Sampler) Command() Command {
	return s.cmd
}

// Tick returns the number of times Poll has been called.
func (s *Sampler) Tick() uint64 {
	return s.tick
}

// String returns the held state of every tracked button in registration order.
func (s *Sampler) String() string {
	var b strings.Builder
	for el := s.held.Front(); el != nil; el = el.Next() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%t", el.Key, el.Value)
	}
	return b.String()
}
