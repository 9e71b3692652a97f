package world

import (
	"github.com/MironCo/mirgo-player/internal/components"
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/movement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PlayerTag = "Player"

	// eyeBelowTop is how far the camera pivot sits under the top of the standing body.
	eyeBelowTop = 0.625
)

// SpawnPlayer adds the player rig to scene: a root carrying the body and controller,
// and a child pivot carrying the camera. The root is placed so its feet rest on
// spawn.Position.
func SpawnPlayer(scene *engine.Scene, phys physicsRegistry, cfg movement.Config, in components.PlayerInput, spawn SpawnDef) (*components.PlayerController, *components.Camera) {
	root := engine.NewGameObject("Player")
	root.Tags = []string{PlayerTag}
	root.Layer = engine.LayerPlayer
	root.Transform.Position = vec3(spawn.Position)
	root.Transform.Position.Y += cfg.Height / 2
	root.Transform.RotateYaw(spawn.Yaw)

	body := components.NewCharacterController()
	body.Height = cfg.Height
	root.AddComponent(body)

	controller := components.NewPlayerController(cfg, in)
	root.AddComponent(controller)

	pivot := engine.NewGameObject("PlayerCameraRoot")
	pivot.Layer = engine.LayerPlayer
	pivot.Transform.Position = rl.Vector3{X: 0, Y: cfg.Height/2 - eyeBelowTop, Z: 0}
	pivot.AddComponent(components.NewCameraPivot())
	camera := components.NewCamera()
	pivot.AddComponent(camera)
	root.AddChild(pivot)

	scene.AddGameObject(root)
	scene.AddGameObject(pivot)
	phys.AddObject(root)

	return controller, camera
}
