package input

import "github.com/go-gl/mathgl/mgl32"

// MapSource is a Source backed by plain maps. It is useful for tests and for bridging event-driven
// input systems, which write into it as events arrive.
type MapSource struct {
	Axes    map[string]mgl32.Vec2
	Buttons map[string]bool
}

// NewMapSource returns an empty MapSource.
func NewMapSource() *MapSource {
	return &MapSource{Axes: map[string]mgl32.Vec2{}, Buttons: map[string]bool{}}
}

func (m *MapSource) Axis(action string) mgl32.Vec2 {
	return m.Axes[action]
}

func (m *MapSource) Button(action string) bool {
	return m.Buttons[action]
}

// SetAxis sets the value of an axis action.
func (m *MapSource) SetAxis(action string, v mgl32.Vec2) {
	m.Axes[action] = v
}

// SetButton sets whether a button action is held.
func (m *MapSource) SetButton(action string, held bool) {
	m.Buttons[action] = held
}

// Frame is one tick of recorded input.
type Frame struct {
	Move   mgl32.Vec2
	Look   mgl32.Vec2
	Jump   bool
	Sprint bool
	Crouch bool
}

// Script is a Source replaying recorded frames. Advance moves to the next frame; once the frames are
// exhausted, the last frame keeps being returned.
type Script struct {
	frames []Frame
	index  int
}

// NewScript returns a Script positioned on the first frame.
func NewScript(frames []Frame) *Script {
	return &Script{frames: frames}
}

func (s *Script) current() Frame {
	if len(s.frames) == 0 {
		return Frame{}
	}
	if s.index >= len(s.frames) {
		return s.frames[len(s.frames)-1]
	}
	return s.frames[s.index]
}

// Advance moves the script to the next frame.
func (s *Script) Advance() {
	if s.index < len(s.frames) {
		s.index++
	}
}

// Done returns true once every frame has been advanced past.
func (s *Script) Done() bool {
	return s.index >= len(s.frames)
}

// Len returns the number of recorded frames.
func (s *Script) Len() int {
	return len(s.frames)
}

func (s *Script) Axis(action string) mgl32.Vec2 {
	switch action {
	case ActionMove:
		return s.current().Move
	case ActionLook:
		return s.current().Look
	}
	return mgl32.Vec2{}
}

func (s *Script) Button(action string) bool {
	f := s.current()
	switch action {
	case ActionJump:
		return f.Jump
	case ActionSprint:
		return f.Sprint
	case ActionCrouch:
		return f.Crouch
	}
	return false
}
