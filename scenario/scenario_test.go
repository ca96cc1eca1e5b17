package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/config"
	"github.com/oomph-ac/fpsim/input"
	"github.com/oomph-ac/fpsim/movement"
	"github.com/oomph-ac/fpsim/world"
	"github.com/sirupsen/logrus"
)

const runAndSlide = `
name: run-and-slide
level:
  - [-100, -1, -100, 100, 0, 100]
spawn: [0, 0, 0]
yaw: 0
steps:
  - ticks: 90
    move: [0, 1]
    sprint: true
  - ticks: 30
    move: [0, 1]
    sprint: true
    crouch: true
  - ticks: 1
    move: [0, 1]
    crouch: true
    jump: true
  - ticks: 60
    move: [0, 1]
`

func mustParse(t *testing.T, data string) *Scenario {
	t.Helper()
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse scenario: %v", err)
	}
	return s
}

func TestParse(t *testing.T) {
	s := mustParse(t, runAndSlide)
	if s.Name != "run-and-slide" || s.TickRate != DefaultTickRate {
		t.Fatalf("unexpected scenario header: %+v", s)
	}
	if len(s.Level) != 1 || len(s.Steps) != 4 {
		t.Fatalf("expected 1 box and 4 steps, got %d and %d", len(s.Level), len(s.Steps))
	}
	if n := len(s.Frames()); n != 181 {
		t.Fatalf("expected 181 frames, got %d", n)
	}
}

func TestParseRejectsEmptyStep(t *testing.T) {
	if _, err := Parse([]byte("steps:\n  - ticks: 0\n")); err == nil {
		t.Fatalf("expected error for a step without ticks")
	}
	if _, err := Parse([]byte("steps: [")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestRunSlideAndJump(t *testing.T) {
	r, err := Run(mustParse(t, runAndSlide), Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(r.Frames) != 181 {
		t.Fatalf("expected a frame per tick, got %d", len(r.Frames))
	}
	if f := r.Frames[89]; f.State != movement.StateGrounded || f.Speed < 10.9 {
		t.Fatalf("expected to be sprinting on the ground before the slide, got %+v", f)
	}
	if f := r.Frames[90]; f.State != movement.StateSliding {
		t.Fatalf("expected slide to start on crouch, got %+v", f)
	}
	if r.Slides != 1 || r.Jumps != 1 {
		t.Fatalf("expected one slide and one jump, got slides=%d jumps=%d", r.Slides, r.Jumps)
	}
	for _, f := range r.Frames {
		if f.State == movement.StateAirborne && f.Speed > config.Default().MaxBhopSpeed+1e-3 {
			t.Fatalf("tick %d: airborne speed %v exceeds the hop cap", f.Tick, f.Speed)
		}
	}
	if r.MaxSpeed < r.MeanSpeed || r.MeanSpeed <= 0 {
		t.Fatalf("unexpected speed statistics max=%v mean=%v", r.MaxSpeed, r.MeanSpeed)
	}
	if final := r.Final(); final.State != movement.StateGrounded || final.Position.Z() <= 0 {
		t.Fatalf("expected to end grounded further along +Z, got %+v", final)
	}
}

func TestRunJumpHeight(t *testing.T) {
	s := mustParse(t, `
level:
  - [-10, -1, -10, 10, 0, 10]
steps:
  - ticks: 1
    jump: true
  - ticks: 90
`)
	r, err := Run(s, Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var peak float32
	for _, f := range r.Frames {
		peak = math32.Max(peak, f.Position.Y())
	}
	if peak < 1.2 || peak > config.Default().JumpHeight+0.15 {
		t.Fatalf("expected to peak near the jump height, got %v", peak)
	}
	if final := r.Final(); final.State != movement.StateGrounded || math32.Abs(final.Position.Y()) > 1e-3 {
		t.Fatalf("expected to land back on the floor, got %+v", final)
	}
}

func TestRunDeterministic(t *testing.T) {
	s := mustParse(t, runAndSlide)
	scenarios := []*Scenario{s, s, s, s}
	reports, err := RunAll(scenarios, Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("run all: %v", err)
	}
	for i, r := range reports {
		if r == nil || r.Digest != reports[0].Digest {
			t.Fatalf("report %d differs from the first run", i)
		}
	}

	other := mustParse(t, runAndSlide)
	other.Yaw = 90
	r, err := Run(other, Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Digest == reports[0].Digest {
		t.Fatalf("expected a different yaw to change the digest")
	}
}

func TestLoadResolvesConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slow.yaml"), []byte("walkSpeed: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	scenario := `
config: slow.yaml
level:
  - [-100, -1, -100, 100, 0, 100]
steps:
  - ticks: 120
    move: [0, 1]
`
	path := filepath.Join(dir, "walk.yaml")
	if err := os.WriteFile(path, []byte(scenario), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "walk.yaml" || s.Config != filepath.Join(dir, "slow.yaml") {
		t.Fatalf("unexpected scenario %+v", s)
	}
	r, err := Run(s, Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if speed := r.Final().Speed; math32.Abs(speed-3) > 1e-2 {
		t.Fatalf("expected walk speed from the override file, got %v", speed)
	}
	if r.Config.WalkSpeed != 3 {
		t.Fatalf("expected report to carry the override config, got walkSpeed=%v", r.Config.WalkSpeed)
	}
}

func TestRunLogsSummaryAndCapsule(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	s := mustParse(t, `
name: duck
level:
  - [-100, -1, -100, 100, 0, 100]
steps:
  - ticks: 120
    crouch: true
`)
	conf := config.Default()
	r, err := Run(s, Options{Config: conf, Log: log})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	final := r.Final()
	if math32.Abs(final.Height-conf.CrouchHeight) > 1e-2 || math32.Abs(final.CameraOffset-conf.CrouchCameraOffset) > 1e-2 {
		t.Fatalf("expected crouched capsule, got height=%v offset=%v", final.Height, final.CameraOffset)
	}
	out := buf.String()
	if !strings.Contains(out, "scenario finished") || !strings.Contains(out, "scenario=duck") {
		t.Fatalf("expected a run summary for the scenario, got %q", out)
	}
}

func TestRunAllReportsErrors(t *testing.T) {
	bad := &Scenario{Name: "bad", Config: "does-not-exist.toml"}
	reports, err := RunAll([]*Scenario{mustParse(t, runAndSlide), bad}, Options{Config: config.Default()})
	if err == nil {
		t.Fatalf("expected an error for the missing config")
	}
	if reports[0] == nil || reports[1] != nil {
		t.Fatalf("expected only the failing scenario to be missing a report")
	}
}

func TestWallDeflectionAgainstLevel(t *testing.T) {
	level := world.NewLevel(Box{-10, -1, -10, 10, 0, 10}.BBox(), Box{-5, 0, 1.5, 5, 4, 2.5}.BBox())

	conf := config.Default()
	body := world.NewBody(level, mgl32.Vec3{0, 1, 0.8}, conf.CapsuleWidth, conf.StandHeight, conf.StepHeight)
	ctrl := movement.NewController(conf, body)
	ctrl.SetProber(level)
	ctrl.SetVelocity(mgl32.Vec3{0, 0, 5})

	ctrl.Tick(input.Command{JumpPressed: true, JumpHeld: true}, 1.0/60)
	if v := ctrl.Velocity(); v.Z() >= 0 || v.Y() <= 0 {
		t.Fatalf("expected to bounce off the wall, got %v", v)
	}
}
