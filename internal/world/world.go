package world

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/MironCo/mirgo-player/internal/components"
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/logger"
	"github.com/MironCo/mirgo-player/internal/movement"
	"github.com/MironCo/mirgo-player/internal/physics"
)

var ErrSceneIndex = errors.New("scene index out of range")

const noPendingScene = -1

// World owns the running scene, its collision world and the player spawned into it.
// Scenes are addressed by their index in the configured list.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World
	Player  *components.PlayerController
	Camera  *components.Camera

	// SceneLoaded fires with the index of every scene that finishes loading.
	SceneLoaded engine.EventWithArg[int]

	scenes    []string
	current   int
	pending   int
	playerCfg movement.Config
	input     components.PlayerInput
}

func New(scenes []string, playerCfg movement.Config, in components.PlayerInput) *World {
	return &World{
		Scene:     engine.NewScene("Empty"),
		Physics:   physics.NewWorld(),
		scenes:    scenes,
		current:   noPendingScene,
		pending:   noPendingScene,
		playerCfg: playerCfg,
		input:     in,
	}
}

func (w *World) SceneCount() int { return len(w.scenes) }

// CurrentScene returns the loaded scene's index, or -1 before the first load.
func (w *World) CurrentScene() int { return w.current }

// LoadScene replaces the running scene with scene i and spawns a fresh player in it.
// On error the running scene is kept.
func (w *World) LoadScene(i int) error {
	if i < 0 || i >= len(w.scenes) {
		return fmt.Errorf("%w: %d of %d", ErrSceneIndex, i, len(w.scenes))
	}

	sf, err := ReadSceneFile(w.scenes[i])
	if err != nil {
		return err
	}

	name := sf.Name
	if name == "" {
		name = fmt.Sprintf("Scene_%d", i)
	}
	scene := engine.NewScene(name)
	phys := physics.NewWorld()
	scene.World = phys

	if err := sf.Build(scene, phys); err != nil {
		return fmt.Errorf("build scene %s: %w", name, err)
	}
	player, camera := SpawnPlayer(scene, phys, w.playerCfg, w.input, sf.Spawn)
	player.SceneRequested.AddListener(w.RequestScene)

	w.Scene, w.Physics = scene, phys
	w.Player, w.Camera = player, camera
	w.current = i
	w.pending = noPendingScene

	w.Scene.Start()
	logger.L().WithFields(logrus.Fields{
		"index":   i,
		"name":    name,
		"objects": len(scene.GameObjects),
	}).Info("scene loaded")
	w.SceneLoaded.Invoke(i)
	return nil
}

// RequestScene queues a scene change for the end of the frame. The first request of
// a frame wins.
func (w *World) RequestScene(i int) {
	if w.pending != noPendingScene {
		return
	}
	w.pending = i
}

// PendingScene returns the queued scene index, or -1.
func (w *World) PendingScene() int { return w.pending }

// ApplyPendingScene loads a queued scene. A failed load is returned and the current
// scene keeps running.
func (w *World) ApplyPendingScene() error {
	if w.pending == noPendingScene {
		return nil
	}
	target := w.pending
	w.pending = noPendingScene
	logger.L().WithFields(logrus.Fields{"from": w.current, "to": target}).Info("scene transition")
	return w.LoadScene(target)
}

// Update runs one frame: every Update, then trigger dispatch, then every LateUpdate.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.DispatchTriggers()
	w.Scene.LateUpdate(deltaTime)
}

// SetPlayerConfig applies new movement tuning to the live player and future spawns.
func (w *World) SetPlayerConfig(cfg movement.Config) {
	w.playerCfg = cfg
	if w.Player != nil {
		w.Player.SetConfig(cfg)
	}
}

func (w *World) PlayerConfig() movement.Config { return w.playerCfg }
