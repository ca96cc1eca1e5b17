package scenario

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/config"
	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/input"
	"github.com/oomph-ac/fpsim/movement"
	"github.com/oomph-ac/fpsim/oerror"
	"github.com/oomph-ac/fpsim/world"
	"github.com/oomph-ac/fpsim/worker"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Options configure a scenario run.
type Options struct {
	Config config.Config
	// Log receives debug output for the modes listed in Debug. It may be nil.
	Log   logrus.FieldLogger
	Debug []movement.DebugMode
}

// Frame is the state of the actor after one tick.
type Frame struct {
	Tick     int
	State    movement.State
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Speed    float32
	HopCount int

	// Height and CameraOffset are the collider height and camera offset after the tick.
	Height       float32
	CameraOffset float32
}

// Report is the outcome of a scenario run.
type Report struct {
	Name   string
	// Config is the configuration the scenario ran with, after applying its override file.
	Config config.Config
	Frames []Frame
	// Digest is a hash of the controller state after every tick. Runs of the same scenario with the
	// same configuration always produce the same digest.
	Digest uint64

	MaxSpeed    float32
	MeanSpeed   float32
	MedianSpeed float32
	// Slides and Jumps count transitions into sliding and airborne respectively.
	Slides, Jumps int
}

// Final returns the last frame of the run.
func (r *Report) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// Run simulates the scenario from start to end.
func Run(s *Scenario, opts Options) (*Report, error) {
	conf := opts.Config
	if s.Config != "" {
		c, err := config.Load(s.Config)
		if err != nil {
			return nil, oerror.Wrap(s.Name, err)
		}
		conf = c
	}
	tickRate := s.TickRate
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	dt := 1 / tickRate

	level := world.NewLevel(s.Boxes()...)
	body := world.NewBody(level, mgl32.Vec3(s.Spawn), conf.CapsuleWidth, conf.StandHeight, conf.StepHeight)
	ctrl := movement.NewController(conf, body)
	ctrl.SetProber(level)
	ctrl.SetYaw(s.Yaw)
	if opts.Log != nil {
		ctrl.SetLogger(opts.Log.WithField("scenario", s.Name))
	}
	for _, mode := range opts.Debug {
		ctrl.Dbg.Toggle(mode, true)
	}

	script := input.NewScript(s.Frames())
	sampler := input.NewSampler(script)
	hasher := xxh3.New()

	r := &Report{Name: s.Name, Config: ctrl.Config(), Frames: make([]Frame, 0, script.Len())}
	speeds := make([]float32, 0, script.Len())
	for tick := 0; !script.Done(); tick++ {
		prev := ctrl.State()
		ctrl.Tick(sampler.Poll(), dt)
		script.Advance()

		ctrl.WriteState(hasher)
		capsule := ctrl.Capsule()
		f := Frame{
			Tick:         tick,
			State:        ctrl.State(),
			Position:     ctrl.Position(),
			Velocity:     ctrl.Velocity(),
			Speed:        ctrl.Speed(),
			HopCount:     ctrl.HopCount(),
			Height:       capsule.Height,
			CameraOffset: capsule.Offset,
		}
		r.Frames = append(r.Frames, f)
		speeds = append(speeds, f.Speed)

		if f.State != prev {
			switch f.State {
			case movement.StateSliding:
				r.Slides++
			case movement.StateAirborne:
				if f.Velocity.Y() > 0 {
					r.Jumps++
				}
			}
		}
	}

	r.Digest = hasher.Sum64()
	r.MaxSpeed = game.Max(speeds)
	r.MeanSpeed = game.Mean(speeds)
	r.MedianSpeed = game.Median(speeds)

	ctrl.Dbg.Logger().WithFields(logrus.Fields{
		"ticks":  ctrl.Ticks(),
		"digest": r.Digest,
		"slides": r.Slides,
		"jumps":  r.Jumps,
	}).Debug("scenario finished")
	return r, nil
}

// RunAll runs every scenario concurrently on the worker pool. Reports are returned in the order of the
// scenarios; a scenario that failed has a nil report.
func RunAll(scenarios []*Scenario, opts Options) ([]*Report, error) {
	reports := make([]*Report, len(scenarios))
	var g worker.Group
	for i, s := range scenarios {
		g.Go(func() error {
			r, err := Run(s, opts)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	return reports, g.Wait()
}
