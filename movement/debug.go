package movement

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DebugMode selects a category of debug output from the controller.
type DebugMode int

const (
	DebugModeTimers DebugMode = iota
	DebugModeJump
	DebugModeSlide
	DebugModeWall
	DebugModeState
	debugModeCount
)

var debugModeNames = [debugModeCount]string{"timers", "jump", "slide", "wall", "state"}

func (m DebugMode) String() string {
	if m < 0 || m >= debugModeCount {
		return "unknown"
	}
	return debugModeNames[m]
}

// DebugModeFromString returns the debug mode with the given name.
func DebugModeFromString(name string) (DebugMode, bool) {
	for i, n := range debugModeNames {
		if n == name {
			return DebugMode(i), true
		}
	}
	return 0, false
}

// Debugger writes per-mode debug messages to a logger.
type Debugger struct {
	log   logrus.FieldLogger
	modes [debugModeCount]bool
}

// NewDebugger returns a debugger writing to log. A nil log discards all output.
func NewDebugger(log logrus.FieldLogger) *Debugger {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Debugger{log: log}
}

// Toggle enables or disables the given mode.
func (d *Debugger) Toggle(mode DebugMode, enabled bool) {
	if mode < 0 || mode >= debugModeCount {
		return
	}
	d.modes[mode] = enabled
}

// Enabled returns true if the given mode is enabled.
func (d *Debugger) Enabled(mode DebugMode) bool {
	return d != nil && mode >= 0 && mode < debugModeCount && d.modes[mode]
}

// Logger returns the logger the debugger writes to.
func (d *Debugger) Logger() logrus.FieldLogger {
	return d.log
}

// Notify logs the formatted message if cond is true and the mode is enabled.
func (d *Debugger) Notify(mode DebugMode, cond bool, msg string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.WithField("mode", mode.String()).Debugf(msg, args...)
}
