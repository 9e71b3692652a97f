package world

import (
	"github.com/MironCo/mirgo-player/internal/components"
	"github.com/MironCo/mirgo-player/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a scene's mesh renderers from a camera, skipping meshes outside the
// view frustum.
type Renderer struct {
	Background rl.Color

	// Drawn and Culled count the meshes of the last Draw.
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.NewColor(120, 160, 200, 255)}
}

// Visible returns the scene's mesh renderers that intersect the camera frustum.
func Visible(scene *engine.Scene, camera rl.Camera3D, aspect float32) (visible []*components.MeshRenderer, culled int) {
	frustum := ExtractFrustum(camera, aspect)
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		if !frustum.ContainsSphere(g.WorldPosition(), boundingRadius(g, mr)) {
			culled++
			continue
		}
		visible = append(visible, mr)
	}
	return visible, culled
}

func boundingRadius(g *engine.GameObject, mr *components.MeshRenderer) float32 {
	s := g.WorldScale()
	size := rl.Vector3{X: mr.Size.X * s.X, Y: mr.Size.Y * s.Y, Z: mr.Size.Z * s.Z}
	if mr.MeshType == components.MeshSphere {
		return size.X
	}
	return rl.Vector3Length(size) / 2
}

// Draw clears the frame and renders the scene. extra runs inside the 3D pass, after
// the meshes, for gizmos.
func (r *Renderer) Draw(scene *engine.Scene, camera rl.Camera3D, extra func()) {
	rl.ClearBackground(r.Background)
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	visible, culled := Visible(scene, camera, aspect)

	rl.BeginMode3D(camera)
	for _, mr := range visible {
		mr.Draw()
	}
	if extra != nil {
		extra()
	}
	rl.EndMode3D()

	r.Drawn, r.Culled = len(visible), culled
}
