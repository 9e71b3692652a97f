package physics

import (
	"github.com/MironCo/mirgo-player/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape is implemented by collider components.
type Shape interface {
	GetOBB() OBB
	IsTriggerVolume() bool
}

// Body is implemented by components that move through triggers, such as the
// character controller.
type Body interface {
	GetBounds() AABB
}

// World tracks the scene's colliders and answers overlap queries against them.
type World struct {
	objects []*engine.GameObject
}

func NewWorld() *World {
	return &World{
		objects: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g if it carries a collider or a body.
func (w *World) AddObject(g *engine.GameObject) {
	if engine.FindComponent[Shape](g) == nil && engine.FindComponent[Body](g) == nil {
		return
	}
	w.objects = append(w.objects, g)
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range w.objects {
		if obj == g {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return
		}
	}
}

func (w *World) Clear() {
	w.objects = w.objects[:0]
}

func (w *World) ObjectCount() int {
	return len(w.objects)
}

// GetCollidableObjects returns active objects with a solid collider.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.objects {
		if shape := solidShape(g); shape != nil {
			result = append(result, g)
		}
	}
	return result
}

func solidShape(g *engine.GameObject) Shape {
	if !g.Active {
		return nil
	}
	shape := engine.FindComponent[Shape](g)
	if shape == nil || shape.IsTriggerVolume() {
		return nil
	}
	return shape
}

func inMask(layer int, mask uint32) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return mask&(1<<uint(layer)) != 0
}

// CheckSphere reports whether a solid collider on one of the masked layers touches the
// sphere. Trigger volumes are ignored.
func (w *World) CheckSphere(center rl.Vector3, radius float32, layers uint32) bool {
	for _, g := range w.objects {
		if w.sphereHits(g, center, radius, layers) {
			return true
		}
	}
	return false
}

// OverlapSphere returns every solid collider on the masked layers touching the sphere.
func (w *World) OverlapSphere(center rl.Vector3, radius float32, layers uint32) []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.objects {
		if w.sphereHits(g, center, radius, layers) {
			result = append(result, g)
		}
	}
	return result
}

func (w *World) sphereHits(g *engine.GameObject, center rl.Vector3, radius float32, layers uint32) bool {
	if !inMask(g.Layer, layers) {
		return false
	}
	shape := solidShape(g)
	if shape == nil {
		return false
	}
	return shape.GetOBB().IntersectsSphere(center, radius)
}

// DispatchTriggers calls OnTriggerStay for every body resting inside a trigger volume,
// on the body's handlers with the trigger and on the trigger's handlers with the body.
func (w *World) DispatchTriggers() {
	for _, g := range w.objects {
		if !g.Active {
			continue
		}
		body := engine.FindComponent[Body](g)
		if body == nil {
			continue
		}
		bounds := NewAABBasOBB(body.GetBounds())

		for _, other := range w.objects {
			if other == g || !other.Active {
				continue
			}
			shape := engine.FindComponent[Shape](other)
			if shape == nil || !shape.IsTriggerVolume() {
				continue
			}
			if !bounds.IntersectsOBB(shape.GetOBB()) {
				continue
			}
			for _, h := range engine.FindComponents[engine.TriggerHandler](g) {
				h.OnTriggerStay(other)
			}
			for _, h := range engine.FindComponents[engine.TriggerHandler](other) {
				h.OnTriggerStay(g)
			}
		}
	}
}
