package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/oomph-ac/fpsim/game"
	"github.com/oomph-ac/fpsim/oerror"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// CrouchMode decides how the crouch control is interpreted.
type CrouchMode string

const (
	// CrouchModeHold crouches while the control is held. Releasing it ends a slide.
	CrouchModeHold CrouchMode = "hold"
	// CrouchModeToggle flips the crouch state on every press. Releasing the control never ends a slide.
	CrouchModeToggle CrouchMode = "toggle"
)

// Config contains every tunable value of the movement controller. It is loaded once when an actor
// is created and is treated as read-only afterwards.
type Config struct {
	WalkSpeed            float32 `toml:"walkSpeed" yaml:"walkSpeed"`
	SprintSpeed          float32 `toml:"sprintSpeed" yaml:"sprintSpeed"`
	CrouchSpeed          float32 `toml:"crouchSpeed" yaml:"crouchSpeed"`
	SlideMinSpeed        float32 `toml:"slideMinSpeed" yaml:"slideMinSpeed"`
	SlideSpeed           float32 `toml:"slideSpeed" yaml:"slideSpeed"`
	SlideSpeedMultiplier float32 `toml:"slideSpeedMultiplier" yaml:"slideSpeedMultiplier"`
	SlideDecel           float32 `toml:"slideDecel" yaml:"slideDecel"`
	SlideMaxTime         float32 `toml:"slideMaxTime" yaml:"slideMaxTime"`
	SlideEndSpeed        float32 `toml:"slideEndSpeed" yaml:"slideEndSpeed"`
	SlideCooldown        float32 `toml:"slideCooldown" yaml:"slideCooldown"`
	SlideJumpBoost       float32 `toml:"slideJumpBoost" yaml:"slideJumpBoost"`
	JumpHeight           float32 `toml:"jumpHeight" yaml:"jumpHeight"`
	Gravity              float32 `toml:"gravity" yaml:"gravity"`
	MaxFallSpeed         float32 `toml:"maxFallSpeed" yaml:"maxFallSpeed"`
	MaxBhopSpeed         float32 `toml:"maxBhopSpeed" yaml:"maxBhopSpeed"`
	BhopWindow           float32 `toml:"bhopWindow" yaml:"bhopWindow"`
	BhopSpeedGain        float32 `toml:"bhopSpeedGain" yaml:"bhopSpeedGain"`
	CoyoteTime           float32 `toml:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer           float32 `toml:"jumpBuffer" yaml:"jumpBuffer"`
	GroundAccel          float32 `toml:"groundAccel" yaml:"groundAccel"`
	AirAccel             float32 `toml:"airAccel" yaml:"airAccel"`
	GroundFriction       float32 `toml:"groundFriction" yaml:"groundFriction"`
	AirDrag              float32 `toml:"airDrag" yaml:"airDrag"`
	WallBounceForce      float32 `toml:"wallBounceForce" yaml:"wallBounceForce"`

	// FallGravityMultiplier scales gravity while the actor is already falling.
	FallGravityMultiplier float32 `toml:"fallGravityMultiplier" yaml:"fallGravityMultiplier"`
	// GroundStick is the vertical velocity pinned while grounded to keep the actor seated.
	GroundStick float32 `toml:"groundStick" yaml:"groundStick"`
	// LandingBoost multiplies horizontal speed once per landing above walk speed.
	LandingBoost         float32 `toml:"landingBoost" yaml:"landingBoost"`
	SlideInputDeadzone   float32 `toml:"slideInputDeadzone" yaml:"slideInputDeadzone"`
	SlideSteer           float32 `toml:"slideSteer" yaml:"slideSteer"`
	SlideBlend           float32 `toml:"slideBlend" yaml:"slideBlend"`
	SlideJumpMinFraction float32 `toml:"slideJumpMinFraction" yaml:"slideJumpMinFraction"`

	StandHeight        float32 `toml:"standHeight" yaml:"standHeight"`
	CrouchHeight       float32 `toml:"crouchHeight" yaml:"crouchHeight"`
	StandCameraOffset  float32 `toml:"standCameraOffset" yaml:"standCameraOffset"`
	CrouchCameraOffset float32 `toml:"crouchCameraOffset" yaml:"crouchCameraOffset"`
	CapsuleSmoothing   float32 `toml:"capsuleSmoothing" yaml:"capsuleSmoothing"`
	// CapsuleWidth and StepHeight size the reference collision body. The controller does not read them.
	CapsuleWidth float32 `toml:"capsuleWidth" yaml:"capsuleWidth"`
	StepHeight   float32 `toml:"stepHeight" yaml:"stepHeight"`

	WallProbeDistance float32 `toml:"wallProbeDistance" yaml:"wallProbeDistance"`
	// WallProbeHeight is the probe origin as a fraction of the current capsule height.
	WallProbeHeight float32 `toml:"wallProbeHeight" yaml:"wallProbeHeight"`
	// WallMinAngle is the minimum angle in degrees between a surface normal and up for it to deflect.
	WallMinAngle float32 `toml:"wallMinAngle" yaml:"wallMinAngle"`
	WallUpMin    float32 `toml:"wallUpMin" yaml:"wallUpMin"`
	WallUpMax    float32 `toml:"wallUpMax" yaml:"wallUpMax"`

	LookSensitivity float32    `toml:"lookSensitivity" yaml:"lookSensitivity"`
	PitchLimit      float32    `toml:"pitchLimit" yaml:"pitchLimit"`
	CrouchMode      CrouchMode `toml:"crouchMode" yaml:"crouchMode"`
}

// Default returns the default movement configuration.
func Default() Config {
	return Config{
		WalkSpeed:            game.DefaultWalkSpeed,
		SprintSpeed:          game.DefaultSprintSpeed,
		CrouchSpeed:          game.DefaultCrouchSpeed,
		SlideMinSpeed:        game.DefaultSlideMinSpeed,
		SlideSpeed:           game.DefaultSlideSpeed,
		SlideSpeedMultiplier: game.DefaultSlideSpeedMultiplier,
		SlideDecel:           game.DefaultSlideDecel,
		SlideMaxTime:         game.DefaultSlideMaxTime,
		SlideEndSpeed:        game.DefaultSlideEndSpeed,
		SlideCooldown:        game.DefaultSlideCooldown,
		SlideJumpBoost:       game.DefaultSlideJumpBoost,
		JumpHeight:           game.DefaultJumpHeight,
		Gravity:              game.DefaultGravity,
		MaxFallSpeed:         game.DefaultMaxFallSpeed,
		MaxBhopSpeed:         game.DefaultMaxBhopSpeed,
		BhopWindow:           game.DefaultBhopWindow,
		BhopSpeedGain:        game.DefaultBhopSpeedGain,
		CoyoteTime:           game.DefaultCoyoteTime,
		JumpBuffer:           game.DefaultJumpBuffer,
		GroundAccel:          game.DefaultGroundAccel,
		AirAccel:             game.DefaultAirAccel,
		GroundFriction:       game.DefaultGroundFriction,
		AirDrag:              game.DefaultAirDrag,
		WallBounceForce:      game.DefaultWallBounceForce,

		FallGravityMultiplier: game.DefaultFallGravityMultiplier,
		GroundStick:           game.DefaultGroundStick,
		LandingBoost:          game.DefaultLandingBoost,
		SlideInputDeadzone:    game.DefaultSlideInputDeadzone,
		SlideSteer:            game.DefaultSlideSteer,
		SlideBlend:            game.DefaultSlideBlend,
		SlideJumpMinFraction:  game.DefaultSlideJumpMinFraction,

		StandHeight:        game.DefaultStandHeight,
		CrouchHeight:       game.DefaultCrouchHeight,
		StandCameraOffset:  game.DefaultStandCameraOffset,
		CrouchCameraOffset: game.DefaultCrouchCameraOffset,
		CapsuleSmoothing:   game.DefaultCapsuleSmoothing,
		CapsuleWidth:       game.DefaultCapsuleWidth,
		StepHeight:         game.DefaultStepHeight,

		WallProbeDistance: game.DefaultWallProbeDistance,
		WallProbeHeight:   game.DefaultWallProbeHeight,
		WallMinAngle:      game.DefaultWallMinAngle,
		WallUpMin:         game.DefaultWallUpMin,
		WallUpMax:         game.DefaultWallUpMax,

		LookSensitivity: game.DefaultLookSensitivity,
		PitchLimit:      game.DefaultPitchLimit,
		CrouchMode:      CrouchModeHold,
	}
}

// Validate reports configuration values that the controller cannot run with sensibly. The controller
// itself never validates; this is only called when loading files.
func (c Config) Validate() error {
	var errs []error
	nonNegative := map[string]float32{
		"walkSpeed":      c.WalkSpeed,
		"sprintSpeed":    c.SprintSpeed,
		"crouchSpeed":    c.CrouchSpeed,
		"slideMinSpeed":  c.SlideMinSpeed,
		"slideSpeed":     c.SlideSpeed,
		"slideDecel":     c.SlideDecel,
		"slideMaxTime":   c.SlideMaxTime,
		"slideEndSpeed":  c.SlideEndSpeed,
		"slideCooldown":  c.SlideCooldown,
		"jumpHeight":     c.JumpHeight,
		"maxFallSpeed":   c.MaxFallSpeed,
		"maxBhopSpeed":   c.MaxBhopSpeed,
		"bhopWindow":     c.BhopWindow,
		"bhopSpeedGain":  c.BhopSpeedGain,
		"coyoteTime":     c.CoyoteTime,
		"jumpBuffer":     c.JumpBuffer,
		"groundAccel":    c.GroundAccel,
		"airAccel":       c.AirAccel,
		"groundFriction": c.GroundFriction,
		"standHeight":    c.StandHeight,
		"crouchHeight":   c.CrouchHeight,
		"stepHeight":     c.StepHeight,
	}
	for _, name := range slices.Sorted(maps.Keys(nonNegative)) {
		if nonNegative[name] < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %v)", name, nonNegative[name]))
		}
	}
	if c.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("gravity must be negative (got %v)", c.Gravity))
	}
	if c.AirDrag <= 0 || c.AirDrag > 1 {
		errs = append(errs, fmt.Errorf("airDrag must be in (0, 1] (got %v)", c.AirDrag))
	}
	if c.CrouchHeight > c.StandHeight {
		errs = append(errs, fmt.Errorf("crouchHeight %v exceeds standHeight %v", c.CrouchHeight, c.StandHeight))
	}
	if c.CapsuleWidth <= 0 {
		errs = append(errs, fmt.Errorf("capsuleWidth must be positive (got %v)", c.CapsuleWidth))
	}
	if c.WallUpMin > c.WallUpMax {
		errs = append(errs, fmt.Errorf("wallUpMin %v exceeds wallUpMax %v", c.WallUpMin, c.WallUpMax))
	}
	switch c.CrouchMode {
	case CrouchModeHold, CrouchModeToggle:
	default:
		errs = append(errs, fmt.Errorf("unknown crouchMode %q", c.CrouchMode))
	}
	return errors.Join(errs...)
}

// Load reads a configuration file. Values missing from the file keep their defaults. The format is
// picked from the file extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, oerror.Wrap("read config", err)
	}
	if err := Decode(path, data, &c); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, oerror.Wrap("validate "+filepath.Base(path), err)
	}
	return c, nil
}

// Decode decodes data into c using the format implied by the extension of name.
func Decode(name string, data []byte, c *Config) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return oerror.Wrap("decode "+filepath.Base(name), err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return oerror.Wrap("decode "+filepath.Base(name), err)
		}
	default:
		return oerror.New("unsupported config format %q", ext)
	}
	return nil
}

// SaveDefault will create and save the default config file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return oerror.New("config file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return oerror.Wrap("stat config", err)
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(Default())
	case ".yaml", ".yml":
		data, err = yaml.Marshal(Default())
	default:
		return oerror.New("unsupported config format %q", ext)
	}
	if err != nil {
		return oerror.Wrap("encode default config", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.Wrap("create config file", err)
	}
	return nil
}
