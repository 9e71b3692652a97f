package movement

import "github.com/go-gl/mathgl/mgl32"

const (
	// lookThreshold is the squared look magnitude below which look input is ignored.
	lookThreshold = 0.01

	// speedOffset is the band around the target speed inside which speed snaps to it.
	speedOffset = 0.1

	// crouchSpeedBonus is added to CrouchSpeed when crouching.
	crouchSpeedBonus = 0.1

	// groundedVelocity keeps a grounded body pressed onto the floor.
	groundedVelocity = -2.0
)

// State is the mutable per-tick movement state.
type State struct {
	Speed            float32
	TargetSpeed      float32
	VerticalVelocity float32
	RotationVelocity float32
	Pitch            float32

	JumpTimeoutDelta float32
	FallTimeoutDelta float32

	Grounded bool
	Covered  bool
	Height   float32
}

// ProbeKind identifies one of the controller's overlap probes.
type ProbeKind int

const (
	ProbeGrounded ProbeKind = iota
	ProbeCovered
)

// Probe describes an overlap sphere and the result of its last test.
type Probe struct {
	Kind   ProbeKind
	Center mgl32.Vec3
	Radius float32
	Hit    bool
}

// Controller drives a collision body from player input: jumping and gravity, ground
// and cover probes, crouching, grounded locomotion and camera look.
type Controller struct {
	cfg   Config
	state State

	input Input
	body  Body
	xf    Transform
	pivot Pivot
	world Overlapper
}

// New builds a grounded, standing controller with both timeouts primed.
func New(cfg Config, host Host) *Controller {
	return &Controller{
		cfg: cfg,
		state: State{
			JumpTimeoutDelta: cfg.JumpTimeout,
			FallTimeoutDelta: cfg.FallTimeout,
			Grounded:         true,
			Height:           cfg.Height,
		},
		input: host.Input,
		body:  host.Body,
		xf:    host.Transform,
		pivot: host.Pivot,
		world: host.World,
	}
}

func (c *Controller) Config() Config { return c.cfg }

// SetConfig replaces the tuning. Runtime state is kept.
func (c *Controller) SetConfig(cfg Config) { c.cfg = cfg }

// State returns a copy of the runtime state.
func (c *Controller) State() State { return c.state }

// Tick advances the controller by one simulation step.
func (c *Controller) Tick(dt float32) {
	c.jumpAndGravity(dt)
	c.groundedCheck()
	c.coveredCheck()
	c.crouch()
	c.move(dt)
}

// LateTick applies look input after every Tick of the frame has run.
func (c *Controller) LateTick(dt float32) {
	c.cameraRotation(dt)
}

func (c *Controller) jumpAndGravity(dt float32) {
	s := &c.state

	if s.Grounded {
		s.FallTimeoutDelta = c.cfg.FallTimeout

		if s.VerticalVelocity < 0 {
			s.VerticalVelocity = groundedVelocity
		}

		if !s.Covered && c.input.Jump() && s.JumpTimeoutDelta <= 0 {
			height := c.cfg.JumpHeight
			if c.input.Crouch() {
				height = c.cfg.CrouchJumpHeight
			}
			s.VerticalVelocity = JumpVelocity(height, c.cfg.Gravity)
		}

		if s.JumpTimeoutDelta >= 0 {
			s.JumpTimeoutDelta -= dt
		}
	} else {
		s.JumpTimeoutDelta = c.cfg.JumpTimeout

		if s.FallTimeoutDelta >= 0 {
			s.FallTimeoutDelta -= dt
		}

		// no jumping mid-air, and no buffered jump on landing either
		c.input.SetJump(false)
	}

	// The cap is tested before integrating, so one step may overshoot it.
	if s.VerticalVelocity < c.cfg.TerminalVelocity {
		s.VerticalVelocity += c.cfg.Gravity * dt
	}
}

func (c *Controller) groundedCheck() {
	c.state.Grounded = c.world.CheckSphere(c.probeCenter(c.cfg.GroundedOffset), c.cfg.GroundedRadius, c.cfg.GroundLayers)
}

func (c *Controller) coveredCheck() {
	if !c.cfg.CoverCheck {
		c.state.Covered = false
		return
	}
	c.state.Covered = c.world.CheckSphere(c.probeCenter(c.cfg.CoveredOffset), c.cfg.CoveredRadius, c.cfg.CoverLayers)
}

func (c *Controller) probeCenter(offset float32) mgl32.Vec3 {
	return c.xf.Position().Sub(mgl32.Vec3{0, offset, 0})
}

func (c *Controller) crouch() {
	h := c.cfg.Height
	if c.input.Crouch() || c.state.Covered {
		h = c.cfg.CrouchHeight
	}
	c.state.Height = h
	c.body.SetHeight(h)
}

// TargetSpeed picks the speed the player is accelerating towards. Any non-zero move
// input counts, there is no deadzone.
func TargetSpeed(cfg Config, in Input) float32 {
	if in.Move() == (mgl32.Vec2{}) {
		return 0
	}
	switch {
	case in.Sprint():
		return cfg.SprintSpeed
	case in.Crouch():
		return cfg.CrouchSpeed + crouchSpeedBonus
	default:
		return cfg.MoveSpeed
	}
}

func (c *Controller) move(dt float32) {
	s := &c.state
	s.TargetSpeed = TargetSpeed(c.cfg, c.input)

	v := c.body.Velocity()
	current := mgl32.Vec3{v.X(), 0, v.Z()}.Len()

	if current < s.TargetSpeed-speedOffset || current > s.TargetSpeed+speedOffset {
		s.Speed = Round3(Lerp(current, s.TargetSpeed, dt*c.cfg.SpeedChangeRate))
	} else {
		s.Speed = s.TargetSpeed
	}

	mv := c.input.Move()
	var dir mgl32.Vec3
	if mv != (mgl32.Vec2{}) {
		dir = c.xf.Right().Mul(mv.X()).Add(c.xf.Forward().Mul(mv.Y()))
	}

	motion := normalize(dir).Mul(s.Speed * dt).Add(mgl32.Vec3{0, s.VerticalVelocity * dt, 0})
	c.body.Move(motion)
}

func (c *Controller) cameraRotation(dt float32) {
	look := c.input.Look()
	if look.Dot(look) < lookThreshold {
		return
	}

	mult := dt
	if c.input.IsCurrentDeviceMouse() {
		mult = 1
	}

	s := &c.state
	s.Pitch += look.Y() * c.cfg.RotationSpeed * mult
	s.RotationVelocity = look.X() * c.cfg.RotationSpeed * mult
	s.Pitch = ClampAngle(s.Pitch, c.cfg.BottomClamp, c.cfg.TopClamp)

	c.pivot.SetLocalPitch(s.Pitch)
	c.xf.RotateYaw(s.RotationVelocity)
}

// Probes returns the overlap spheres used by the last Tick, for debug drawing.
func (c *Controller) Probes() []Probe {
	probes := []Probe{{
		Kind:   ProbeGrounded,
		Center: c.probeCenter(c.cfg.GroundedOffset),
		Radius: c.cfg.GroundedRadius,
		Hit:    c.state.Grounded,
	}}
	if c.cfg.CoverCheck {
		probes = append(probes, Probe{
			Kind:   ProbeCovered,
			Center: c.probeCenter(c.cfg.CoveredOffset),
			Radius: c.cfg.CoveredRadius,
			Hit:    c.state.Covered,
		})
	}
	return probes
}
