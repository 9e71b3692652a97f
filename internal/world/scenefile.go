package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/MironCo/mirgo-player/internal/components"
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrSceneFormat = errors.New("invalid scene file")

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Spawn   SpawnDef    `json:"spawn"`
	Objects []ObjectDef `json:"objects"`
}

// SpawnDef places the player: Position is where the feet land, Yaw the initial heading.
type SpawnDef struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      int               `json:"layer,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type      string     `json:"type"`
	Mesh      string     `json:"mesh"`
	Size      [3]float32 `json:"size"`
	Color     string     `json:"color"`
	Wireframe bool       `json:"wireframe,omitempty"`
}

type boxColliderDef struct {
	Type      string     `json:"type"`
	Size      [3]float32 `json:"size"`
	Offset    [3]float32 `json:"offset,omitempty"`
	IsTrigger bool       `json:"isTrigger,omitempty"`
}

type doorTriggerDef struct {
	Type        string `json:"type"`
	TargetScene *int   `json:"targetScene,omitempty"`
}

// defaultDoorTarget is the scene a door leads to when the file does not say.
const defaultDoorTarget = 1

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

var meshByName = map[string]components.MeshType{
	"cube":   components.MeshCube,
	"sphere": components.MeshSphere,
	"plane":  components.MeshPlane,
}

// --- Loading ---

func ReadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sf, nil
}

// ParseScene decodes a scene file and checks every component header.
func ParseScene(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSceneFormat, err)
	}

	for _, obj := range sf.Objects {
		if obj.Layer < 0 || obj.Layer > 31 {
			return nil, fmt.Errorf("%w: object %q has layer %d outside 0..31", ErrSceneFormat, obj.Name, obj.Layer)
		}
		for _, raw := range obj.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				return nil, fmt.Errorf("%w: object %q: %v", ErrSceneFormat, obj.Name, err)
			}
			if header.Type == "" {
				return nil, fmt.Errorf("%w: object %q has a component without a type", ErrSceneFormat, obj.Name)
			}
		}
	}
	return &sf, nil
}

// Build creates the scene's objects and registers their colliders with phys.
func (sf *SceneFile) Build(scene *engine.Scene, phys physicsRegistry) error {
	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Layer = objDef.Layer
		g.Transform.Position = vec3(objDef.Position)
		g.Transform.Rotation = vec3(objDef.Rotation)

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := addComponent(g, raw); err != nil {
				return fmt.Errorf("object %q: %w", objDef.Name, err)
			}
		}

		scene.AddGameObject(g)
		phys.AddObject(g)
	}
	return nil
}

type physicsRegistry interface {
	AddObject(g *engine.GameObject)
}

func addComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		mesh, ok := meshByName[def.Mesh]
		if !ok {
			return fmt.Errorf("%w: unknown mesh %q", ErrSceneFormat, def.Mesh)
		}
		renderer := components.NewMeshRenderer(mesh, lookupColor(def.Color), vec3(def.Size))
		renderer.Wireframe = def.Wireframe
		g.AddComponent(renderer)

	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewBoxCollider(vec3(def.Size))
		col.Offset = vec3(def.Offset)
		col.IsTrigger = def.IsTrigger
		g.AddComponent(col)

	case "DoorTrigger":
		var def doorTriggerDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		target := defaultDoorTarget
		if def.TargetScene != nil {
			target = *def.TargetScene
		}
		g.AddComponent(components.NewDoorTrigger(target))

	default:
		logger.L().WithFields(logrus.Fields{"object": g.Name, "type": header.Type}).Warn("skipping unknown component")
	}
	return nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
