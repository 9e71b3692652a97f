package components

import (
	"github.com/MironCo/mirgo-player/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh at the object's world transform. Rotation is applied in X, Y, Z
// order with yaw negated to match Transform.Forward.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(-rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)

	origin := rl.Vector3{}
	switch m.MeshType {
	case MeshCube:
		if m.Wireframe {
			rl.DrawCubeWiresV(origin, size, m.Color)
		} else {
			rl.DrawCubeV(origin, size, m.Color)
			rl.DrawCubeWiresV(origin, size, rl.Fade(rl.Black, 0.3))
		}
	case MeshSphere:
		rl.DrawSphere(origin, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(origin, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}

	rl.PopMatrix()
}
