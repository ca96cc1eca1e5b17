package scenario

import (
	"os"
	"path/filepath"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/input"
	"github.com/oomph-ac/fpsim/oerror"
	"gopkg.in/yaml.v3"
)

// DefaultTickRate is the simulation rate used when a scenario does not set one.
const DefaultTickRate = 60

// Box is a solid box given as its two opposite corners: x1, y1, z1, x2, y2, z2.
type Box [6]float32

// BBox returns the box as a bounding box.
func (b Box) BBox() cube.BBox {
	return cube.Box(b[0], b[1], b[2], b[3], b[4], b[5])
}

// Step holds a single input state for a number of ticks. Buttons are held for the whole step, so a
// press is only registered on its first tick.
type Step struct {
	Ticks  int        `yaml:"ticks"`
	Move   [2]float32 `yaml:"move"`
	Look   [2]float32 `yaml:"look"`
	Jump   bool       `yaml:"jump"`
	Crouch bool       `yaml:"crouch"`
	Sprint bool       `yaml:"sprint"`
}

// Scenario is a scripted run of a single actor through a static level.
type Scenario struct {
	Name string `yaml:"name"`
	// Config is an optional configuration file used instead of the configuration passed to Run. A
	// relative path is resolved against the directory of the scenario file.
	Config   string     `yaml:"config"`
	TickRate float32    `yaml:"tickRate"`
	Level    []Box      `yaml:"level"`
	Spawn    [3]float32 `yaml:"spawn"`
	Yaw      float32    `yaml:"yaw"`
	Steps    []Step     `yaml:"steps"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oerror.Wrap("read scenario", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, oerror.Wrap(path, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	if s.Config != "" && !filepath.IsAbs(s.Config) {
		s.Config = filepath.Join(filepath.Dir(path), s.Config)
	}
	return s, nil
}

// Parse decodes a scenario from YAML and checks it for errors.
func Parse(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, oerror.Wrap("decode scenario", err)
	}
	if s.TickRate == 0 {
		s.TickRate = DefaultTickRate
	}
	if s.TickRate < 0 {
		return nil, oerror.New("tick rate must be positive (got %v)", s.TickRate)
	}
	for i, step := range s.Steps {
		if step.Ticks <= 0 {
			return nil, oerror.New("step %d: ticks must be positive (got %d)", i, step.Ticks)
		}
	}
	return s, nil
}

// Frames expands the steps of the scenario into one input frame per tick.
func (s *Scenario) Frames() []input.Frame {
	var frames []input.Frame
	for _, step := range s.Steps {
		f := input.Frame{
			Move:   mgl32.Vec2(step.Move),
			Look:   mgl32.Vec2(step.Look),
			Jump:   step.Jump,
			Crouch: step.Crouch,
			Sprint: step.Sprint,
		}
		for i := 0; i < step.Ticks; i++ {
			frames = append(frames, f)
		}
	}
	return frames
}

// Boxes returns the level boxes of the scenario.
func (s *Scenario) Boxes() []cube.BBox {
	boxes := make([]cube.BBox, 0, len(s.Level))
	for _, b := range s.Level {
		boxes = append(boxes, b.BBox())
	}
	return boxes
}
