package components

import (
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is a solid box, or a trigger volume when IsTrigger is set. Size is in
// local units and is scaled by the object's world scale.
type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	IsTrigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the size after applying the object's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}

// GetAABB returns the world-space box ignoring rotation.
func (b *BoxCollider) GetAABB() physics.AABB {
	return physics.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) GetOBB() physics.OBB {
	g := b.GetGameObject()
	return physics.NewOBBFromBox(b.GetCenter(), b.Size, g.WorldRotation(), g.WorldScale())
}

func (b *BoxCollider) IsTriggerVolume() bool {
	return b.IsTrigger
}
