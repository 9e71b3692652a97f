package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// GetCollidableObjects returns the solid (non-trigger) colliders.
	GetCollidableObjects() []*GameObject
	// CheckSphere reports whether any solid collider on the masked layers touches the sphere.
	CheckSphere(center rl.Vector3, radius float32, layers uint32) bool
	// OverlapSphere returns every solid collider on the masked layers touching the sphere.
	OverlapSphere(center rl.Vector3, radius float32, layers uint32) []*GameObject
}
