package physics

import (
	"github.com/chewxy/math32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned box. Character bodies collide as AABBs.
type AABB struct {
	Min, Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 { return rl.Vector3Lerp(a.Min, a.Max, 0.5) }

func (a AABB) Size() rl.Vector3 { return rl.Vector3Subtract(a.Max, a.Min) }

// Intersects reports strict overlap. Boxes that only share a face do not intersect,
// so a body resting on a floor is not pushed every tick.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Resolve returns the smallest push that moves a out of b, or zero when they do not
// overlap. Ties go to X before Y before Z, positive before negative.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	candidates := [...]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: b.Min.X - a.Max.X},
		{Y: b.Max.Y - a.Min.Y},
		{Y: b.Min.Y - a.Max.Y},
		{Z: b.Max.Z - a.Min.Z},
		{Z: b.Min.Z - a.Max.Z},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if depth(c) < depth(best) {
			best = c
		}
	}
	return best
}

// depth is the length of a push that has a single non-zero component.
func depth(v rl.Vector3) float32 {
	return math32.Abs(v.X) + math32.Abs(v.Y) + math32.Abs(v.Z)
}
