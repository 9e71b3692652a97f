package movement

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid movement config")

// Config holds the tuning constants of a player. Values are authored once and only
// replaced wholesale (see Controller.SetConfig).
type Config struct {
	// Player
	MoveSpeed       float32 `yaml:"moveSpeed"`
	SprintSpeed     float32 `yaml:"sprintSpeed"`
	CrouchSpeed     float32 `yaml:"crouchSpeed"`
	RotationSpeed   float32 `yaml:"rotationSpeed"`
	SpeedChangeRate float32 `yaml:"speedChangeRate"`

	Height           float32 `yaml:"height"`
	CrouchHeight     float32 `yaml:"crouchHeight"`
	CrouchJumpHeight float32 `yaml:"crouchJumpHeight"`

	JumpHeight       float32 `yaml:"jumpHeight"`
	Gravity          float32 `yaml:"gravity"`
	TerminalVelocity float32 `yaml:"terminalVelocity"`

	JumpTimeout float32 `yaml:"jumpTimeout"`
	FallTimeout float32 `yaml:"fallTimeout"`

	// Grounded probe
	GroundedOffset float32   `yaml:"groundedOffset"`
	GroundedRadius float32   `yaml:"groundedRadius"`
	GroundLayers   LayerMask `yaml:"groundLayers"`

	// Covered probe
	CoverCheck    bool      `yaml:"coverCheck"`
	CoveredOffset float32   `yaml:"coveredOffset"`
	CoveredRadius float32   `yaml:"coveredRadius"`
	CoverLayers   LayerMask `yaml:"coverLayers"`

	// Camera pitch limits in degrees
	TopClamp    float32 `yaml:"topClamp"`
	BottomClamp float32 `yaml:"bottomClamp"`
}

// DefaultConfig returns the standard first-person tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:       4.0,
		SprintSpeed:     6.0,
		CrouchSpeed:     2.0,
		RotationSpeed:   1.0,
		SpeedChangeRate: 10.0,

		Height:           2.0,
		CrouchHeight:     1.0,
		CrouchJumpHeight: 0.8,

		JumpHeight:       1.2,
		Gravity:          -15.0,
		TerminalVelocity: 53.0,

		JumpTimeout: 0.1,
		FallTimeout: 0.15,

		GroundedOffset: 0.75,
		GroundedRadius: 0.5,
		GroundLayers:   1,

		CoverCheck:    true,
		CoveredOffset: -0.75,
		CoveredRadius: 0.5,
		CoverLayers:   1,

		TopClamp:    90.0,
		BottomClamp: -90.0,
	}
}

// Validate reports the first out-of-range value, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	nonNegative := []struct {
		name  string
		value float32
	}{
		{"moveSpeed", c.MoveSpeed},
		{"sprintSpeed", c.SprintSpeed},
		{"crouchSpeed", c.CrouchSpeed},
		{"speedChangeRate", c.SpeedChangeRate},
		{"jumpHeight", c.JumpHeight},
		{"crouchJumpHeight", c.CrouchJumpHeight},
		{"jumpTimeout", c.JumpTimeout},
		{"fallTimeout", c.FallTimeout},
		{"groundedRadius", c.GroundedRadius},
		{"coveredRadius", c.CoveredRadius},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfig, f.name, f.value)
		}
	}

	if c.Height <= 0 || c.CrouchHeight <= 0 {
		return fmt.Errorf("%w: heights must be positive, got height=%g crouchHeight=%g", ErrInvalidConfig, c.Height, c.CrouchHeight)
	}
	if c.CrouchHeight > c.Height {
		return fmt.Errorf("%w: crouchHeight %g exceeds height %g", ErrInvalidConfig, c.CrouchHeight, c.Height)
	}
	if c.Gravity >= 0 {
		return fmt.Errorf("%w: gravity must point down, got %g", ErrInvalidConfig, c.Gravity)
	}
	if c.BottomClamp > c.TopClamp {
		return fmt.Errorf("%w: bottomClamp %g above topClamp %g", ErrInvalidConfig, c.BottomClamp, c.TopClamp)
	}
	return nil
}
