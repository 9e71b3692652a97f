package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/logger"
	"github.com/MironCo/mirgo-player/internal/movement"
)

// PlayerInput is what the player controller reads each frame.
type PlayerInput interface {
	movement.Input
	Interact() bool
}

// PlayerController drives its object with a movement.Controller. It needs a
// CharacterController on the same object and a child carrying a CameraPivot.
type PlayerController struct {
	engine.BaseComponent

	Config movement.Config
	Input  PlayerInput

	// SceneRequested fires with a door's target scene while interact is held inside it.
	SceneRequested engine.EventWithArg[int]
	// Landed fires on the tick the ground probe first hits after being airborne.
	Landed engine.Event

	controller  *movement.Controller
	wasGrounded bool
}

func NewPlayerController(cfg movement.Config, in PlayerInput) *PlayerController {
	return &PlayerController{
		Config: cfg,
		Input:  in,
	}
}

func (p *PlayerController) Start() {
	g := p.GetGameObject()

	body := engine.GetComponent[*CharacterController](g)
	if body == nil {
		logger.L().WithField("object", g.Name).Error("player controller has no character controller")
		return
	}
	pivot := findPivot(g)
	if pivot == nil {
		logger.L().WithField("object", g.Name).Error("player controller has no camera pivot child")
		return
	}
	if p.Input == nil {
		logger.L().WithField("object", g.Name).Error("player controller has no input")
		return
	}
	if g.Scene == nil || g.Scene.World == nil {
		logger.L().WithField("object", g.Name).Error("player controller is not in a world")
		return
	}

	body.SetHeight(p.Config.Height)
	p.controller = movement.New(p.Config, movement.Host{
		Input:     p.Input,
		Body:      bodyAdapter{body},
		Transform: transformAdapter{g},
		Pivot:     pivot,
		World:     worldAdapter{g.Scene.World},
	})
	p.wasGrounded = true
	logger.L().WithField("object", g.Name).Debug("player controller ready")
}

func findPivot(g *engine.GameObject) *CameraPivot {
	for _, child := range g.Children {
		if pivot := engine.GetComponent[*CameraPivot](child); pivot != nil {
			return pivot
		}
	}
	return nil
}

func (p *PlayerController) Update(deltaTime float32) {
	if p.controller == nil {
		return
	}
	p.controller.Tick(deltaTime)

	grounded := p.controller.State().Grounded
	if grounded && !p.wasGrounded {
		p.Landed.Invoke()
	}
	p.wasGrounded = grounded
}

func (p *PlayerController) LateUpdate(deltaTime float32) {
	if p.controller == nil {
		return
	}
	p.controller.LateTick(deltaTime)
}

func (p *PlayerController) OnTriggerStay(other *engine.GameObject) {
	if p.Input == nil || !p.Input.Interact() {
		return
	}
	if door := engine.GetComponent[*DoorTrigger](other); door != nil {
		p.SceneRequested.Invoke(door.TargetScene)
	}
}

// SetConfig swaps the movement tuning without resetting runtime state.
func (p *PlayerController) SetConfig(cfg movement.Config) {
	p.Config = cfg
	if p.controller != nil {
		p.controller.SetConfig(cfg)
	}
}

// Ready reports whether Start found everything the controller needs.
func (p *PlayerController) Ready() bool {
	return p.controller != nil
}

func (p *PlayerController) State() movement.State {
	if p.controller == nil {
		return movement.State{}
	}
	return p.controller.State()
}

func (p *PlayerController) Probes() []movement.Probe {
	if p.controller == nil {
		return nil
	}
	return p.controller.Probes()
}

type bodyAdapter struct {
	cc *CharacterController
}

func (b bodyAdapter) Velocity() mgl32.Vec3 { return engine.ToVec3(b.cc.Velocity()) }

func (b bodyAdapter) SetHeight(h float32) { b.cc.SetHeight(h) }

func (b bodyAdapter) Move(motion mgl32.Vec3) { b.cc.Move(engine.FromVec3(motion)) }

type transformAdapter struct {
	g *engine.GameObject
}

func (t transformAdapter) Position() mgl32.Vec3 { return engine.ToVec3(t.g.WorldPosition()) }

func (t transformAdapter) Right() mgl32.Vec3 { return engine.ToVec3(t.g.Transform.Right()) }

func (t transformAdapter) Forward() mgl32.Vec3 { return engine.ToVec3(t.g.Transform.Forward()) }

func (t transformAdapter) RotateYaw(degrees float32) { t.g.Transform.RotateYaw(degrees) }

type worldAdapter struct {
	w engine.WorldAccess
}

func (w worldAdapter) CheckSphere(center mgl32.Vec3, radius float32, layers movement.LayerMask) bool {
	return w.w.CheckSphere(engine.FromVec3(center), radius, uint32(layers))
}
