package components

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/input"
	"github.com/MironCo/mirgo-player/internal/movement"
	"github.com/MironCo/mirgo-player/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const epsilon = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

type testWorld struct {
	scene   *engine.Scene
	physics *physics.World
}

func newTestWorld() *testWorld {
	w := &testWorld{
		scene:   engine.NewScene("test"),
		physics: physics.NewWorld(),
	}
	w.scene.World = w.physics
	w.addBox("Floor", rl.Vector3{X: 0, Y: -0.5, Z: 0}, rl.Vector3{X: 20, Y: 1, Z: 20})
	return w
}

func (w *testWorld) add(g *engine.GameObject) {
	w.scene.AddGameObject(g)
	w.physics.AddObject(g)
}

func (w *testWorld) addBox(name string, pos, size rl.Vector3) *BoxCollider {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	box := NewBoxCollider(size)
	g.AddComponent(box)
	w.add(g)
	return box
}

func (w *testWorld) addBody(pos rl.Vector3) *CharacterController {
	g := engine.NewGameObject("Body")
	g.Layer = engine.LayerPlayer
	g.Transform.Position = pos
	cc := NewCharacterController()
	g.AddComponent(cc)
	w.add(g)
	return cc
}

// addPlayer builds the standard rig: body and controller on the root, pivot on a child.
func (w *testWorld) addPlayer(in PlayerInput, withPivot bool) *PlayerController {
	g := engine.NewGameObject("Player")
	g.Layer = engine.LayerPlayer
	g.Transform.Position = rl.Vector3{X: 0, Y: 1, Z: 0}
	g.AddComponent(NewCharacterController())
	pc := NewPlayerController(movement.DefaultConfig(), in)
	g.AddComponent(pc)
	w.add(g)

	if withPivot {
		pivot := engine.NewGameObject("CameraPivot")
		pivot.Transform.Position = rl.Vector3{X: 0, Y: 0.6, Z: 0}
		pivot.AddComponent(NewCameraPivot())
		pivot.AddComponent(NewCamera())
		g.AddChild(pivot)
		w.scene.AddGameObject(pivot)
	}
	return pc
}

func (w *testWorld) step(dt float32) {
	w.scene.Update(dt)
	w.physics.DispatchTriggers()
	w.scene.LateUpdate(dt)
}

func TestBoxColliderScaledBounds(t *testing.T) {
	w := newTestWorld()
	box := w.addBox("Crate", rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	box.GetGameObject().Transform.Scale = rl.Vector3{X: 2, Y: 4, Z: 1}
	box.Offset = rl.Vector3{X: 0, Y: 1, Z: 0}

	aabb := box.GetAABB()
	if aabb.Min != (rl.Vector3{X: 0, Y: 1, Z: 2.5}) || aabb.Max != (rl.Vector3{X: 2, Y: 5, Z: 3.5}) {
		t.Errorf("Expected box from (0,1,2.5) to (2,5,3.5), got %v to %v", aabb.Min, aabb.Max)
	}

	obb := box.GetOBB()
	if obb.HalfSize != (rl.Vector3{X: 1, Y: 2, Z: 0.5}) {
		t.Errorf("Expected OBB half size (1,2,0.5), got %v", obb.HalfSize)
	}
}

func TestCharacterControllerLandsOnFloor(t *testing.T) {
	w := newTestWorld()
	cc := w.addBody(rl.Vector3{X: 0, Y: 1.5, Z: 0})
	cc.Update(0.5)

	moved := cc.Move(rl.Vector3{X: 0, Y: -1, Z: 0})

	pos := cc.GetGameObject().Transform.Position
	if !near(pos.Y, 1) {
		t.Errorf("Expected body to rest at Y=1, got %f", pos.Y)
	}
	if !near(moved.Y, -0.5) {
		t.Errorf("Expected actual displacement -0.5, got %f", moved.Y)
	}
	if !near(cc.Velocity().Y, -1) {
		t.Errorf("Expected velocity -1 (displacement over dt), got %f", cc.Velocity().Y)
	}
	if !cc.IsGrounded() {
		t.Error("Expected body to be grounded after landing")
	}
}

func TestCharacterControllerClimbsStep(t *testing.T) {
	w := newTestWorld()
	w.addBox("Step", rl.Vector3{X: 1, Y: 0.1, Z: 0}, rl.Vector3{X: 1, Y: 0.2, Z: 1})
	cc := w.addBody(rl.Vector3{X: 0, Y: 1, Z: 0})
	cc.Update(1.0 / 60)

	cc.Move(rl.Vector3{X: 0.1, Y: 0, Z: 0})

	pos := cc.GetGameObject().Transform.Position
	if !near(pos.X, 0.1) {
		t.Errorf("Expected to keep horizontal progress, got X=%f", pos.X)
	}
	if pos.Y <= 1.2 {
		t.Errorf("Expected to step on top of the 0.2 step, got Y=%f", pos.Y)
	}
}

func TestCharacterControllerBlockedByWall(t *testing.T) {
	w := newTestWorld()
	w.addBox("Wall", rl.Vector3{X: 1, Y: 1, Z: 0}, rl.Vector3{X: 1, Y: 2, Z: 4})
	cc := w.addBody(rl.Vector3{X: 0, Y: 1, Z: 0})
	cc.Update(1.0 / 60)

	cc.Move(rl.Vector3{X: 0.2, Y: 0, Z: 0})

	pos := cc.GetGameObject().Transform.Position
	if !near(pos.X, 0) {
		t.Errorf("Expected wall to push body back to X=0, got %f", pos.X)
	}
	if cc.Flags()&CollidedSides == 0 {
		t.Error("Expected side collision flag")
	}
}

func TestCharacterControllerIgnoresTriggers(t *testing.T) {
	w := newTestWorld()
	door := w.addBox("Door", rl.Vector3{X: 1, Y: 1, Z: 0}, rl.Vector3{X: 1, Y: 2, Z: 1})
	door.IsTrigger = true
	cc := w.addBody(rl.Vector3{X: 0, Y: 1, Z: 0})
	cc.Update(1.0 / 60)

	cc.Move(rl.Vector3{X: 0.5, Y: 0, Z: 0})

	if pos := cc.GetGameObject().Transform.Position; !near(pos.X, 0.5) {
		t.Errorf("Expected to pass through trigger, got X=%f", pos.X)
	}
}

func TestCharacterControllerSetHeightKeepsFeet(t *testing.T) {
	w := newTestWorld()
	cc := w.addBody(rl.Vector3{X: 0, Y: 1, Z: 0})

	cc.SetHeight(1)

	bounds := cc.GetBounds()
	if !near(bounds.Min.Y, 0) || !near(bounds.Max.Y, 1) {
		t.Errorf("Expected crouched body from 0 to 1, got %f to %f", bounds.Min.Y, bounds.Max.Y)
	}
}

func TestCameraPivotLookDirection(t *testing.T) {
	parent := engine.NewGameObject("Player")
	parent.Transform.Rotation.Y = 90
	child := engine.NewGameObject("CameraPivot")
	pivot := NewCameraPivot()
	child.AddComponent(pivot)
	parent.AddChild(child)

	dir := pivot.LookDirection()
	if !near(dir.X, 1) || !near(dir.Y, 0) || !near(dir.Z, 0) {
		t.Errorf("Expected yaw 90 to look along +X, got %v", dir)
	}

	pivot.SetLocalPitch(90)
	dir = pivot.LookDirection()
	if !near(dir.Y, -1) {
		t.Errorf("Expected pitch 90 to look straight down, got %v", dir)
	}
}

func TestPlayerControllerWalksForward(t *testing.T) {
	w := newTestWorld()
	in := input.NewState()
	pc := w.addPlayer(in, true)
	w.scene.Start()

	if !pc.Ready() {
		t.Fatal("Expected controller to be ready")
	}

	in.OnMove(mgl32.Vec2{0, 1})
	for i := 0; i < 60; i++ {
		w.step(1.0 / 60)
	}

	pos := pc.GetGameObject().Transform.Position
	if pos.Z >= -1 {
		t.Errorf("Expected player to walk along -Z, got Z=%f", pos.Z)
	}
	if !near(pos.Y, 1) {
		t.Errorf("Expected player to stay on the floor, got Y=%f", pos.Y)
	}
	if !pc.State().Grounded {
		t.Error("Expected player to be grounded")
	}
	if pc.State().Speed != pc.Config.MoveSpeed {
		t.Errorf("Expected speed to settle at %f, got %f", pc.Config.MoveSpeed, pc.State().Speed)
	}
}

func TestPlayerControllerLook(t *testing.T) {
	w := newTestWorld()
	in := input.NewState()
	pc := w.addPlayer(in, true)
	w.scene.Start()

	in.OnLook(mgl32.Vec2{10, 5})
	w.step(1.0 / 60)

	g := pc.GetGameObject()
	if !near(g.Transform.Rotation.Y, 10) {
		t.Errorf("Expected yaw 10, got %f", g.Transform.Rotation.Y)
	}
	if pitch := g.Children[0].Transform.Rotation.X; !near(pitch, 5) {
		t.Errorf("Expected pivot pitch 5, got %f", pitch)
	}
}

func TestPlayerControllerLands(t *testing.T) {
	w := newTestWorld()
	in := input.NewState()
	pc := w.addPlayer(in, true)
	w.scene.Start()

	landed := 0
	pc.Landed.AddListener(func() { landed++ })

	in.OnJump(true)
	for i := 0; i < 120; i++ {
		w.step(1.0 / 60)
	}

	if landed != 1 {
		t.Errorf("Expected exactly one landing, got %d", landed)
	}
	if in.Jump() {
		t.Error("Expected the jump request to be consumed while airborne")
	}
}

func TestPlayerControllerDoorRequest(t *testing.T) {
	w := newTestWorld()
	in := input.NewState()
	pc := w.addPlayer(in, true)

	door := w.addBox("Door", rl.Vector3{X: 0.8, Y: 1, Z: 0}, rl.Vector3{X: 1, Y: 2, Z: 1})
	door.IsTrigger = true
	door.GetGameObject().AddComponent(NewDoorTrigger(2))
	w.scene.Start()

	var requested []int
	pc.SceneRequested.AddListener(func(i int) { requested = append(requested, i) })

	w.step(1.0 / 60)
	if len(requested) != 0 {
		t.Fatalf("Expected no request without interact, got %v", requested)
	}

	in.OnInteract(true)
	w.step(1.0 / 60)
	if len(requested) != 1 || requested[0] != 2 {
		t.Errorf("Expected one request for scene 2, got %v", requested)
	}
}

func TestPlayerControllerWithoutPivotIsInert(t *testing.T) {
	w := newTestWorld()
	in := input.NewState()
	pc := w.addPlayer(in, false)
	w.scene.Start()

	if pc.Ready() {
		t.Fatal("Expected controller without pivot to stay inert")
	}

	in.OnMove(mgl32.Vec2{1, 0})
	w.step(1.0 / 60)

	if pos := pc.GetGameObject().Transform.Position; pos != (rl.Vector3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Expected inert player not to move, got %v", pos)
	}
	if pc.Probes() != nil {
		t.Error("Expected no probes from an inert controller")
	}
}

func TestPlayerControllerSetConfig(t *testing.T) {
	w := newTestWorld()
	pc := w.addPlayer(input.NewState(), true)
	w.scene.Start()

	cfg := movement.DefaultConfig()
	cfg.MoveSpeed = 9
	pc.SetConfig(cfg)

	if pc.Config.MoveSpeed != 9 || pc.controller.Config().MoveSpeed != 9 {
		t.Error("Expected SetConfig to reach the movement controller")
	}
}
