package movement

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/fpsim/input"
	"github.com/sirupsen/logrus"
)

func TestDebuggerModes(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)

	c, _ := newTestController(true)
	c.SetLogger(log)
	c.Dbg.Toggle(DebugModeSlide, true)

	c.SetVelocity(mgl32.Vec3{0, 0, 10})
	c.Tick(input.Command{Move: mgl32.Vec2{0, 1}, CrouchPressed: true, CrouchHeld: true}, testDt)

	out := buf.String()
	if !strings.Contains(out, "slide start") || !strings.Contains(out, "mode=slide") {
		t.Fatalf("expected slide debug output, got %q", out)
	}
	if strings.Contains(out, "mode=timers") {
		t.Fatalf("expected disabled modes to stay quiet, got %q", out)
	}
}

func TestDebugModeFromString(t *testing.T) {
	for m := DebugMode(0); m < debugModeCount; m++ {
		got, ok := DebugModeFromString(m.String())
		if !ok || got != m {
			t.Fatalf("expected %v to round trip, got %v (ok=%v)", m, got, ok)
		}
	}
	if _, ok := DebugModeFromString("nope"); ok {
		t.Fatalf("expected unknown mode to be rejected")
	}
}

func TestDebuggerLogger(t *testing.T) {
	log := logrus.New()
	if NewDebugger(log).Logger() != log {
		t.Fatalf("expected debugger to write to the given logger")
	}
	c, _ := newTestController(true)
	if c.Dbg.Logger() == nil {
		t.Fatalf("expected a discarding logger when none is set")
	}
	c.SetLogger(log)
	if c.Dbg.Logger() != log {
		t.Fatalf("expected SetLogger to replace the debug logger")
	}
}
