package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented bounding box.
type OBB struct {
	Center   rl.Vector3
	HalfSize rl.Vector3
	Axes     [3]rl.Vector3 // local X, Y, Z in world space
}

var identityAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
}

// NewOBB creates an OBB from center, full size and Euler rotation in degrees. Yaw uses
// the engine convention (positive turns clockwise seen from above).
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rotX := rl.MatrixRotateX(mgl32.DegToRad(rotation.X))
	rotY := rl.MatrixRotateY(-mgl32.DegToRad(rotation.Y))
	rotZ := rl.MatrixRotateZ(mgl32.DegToRad(rotation.Z))
	m := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}),
			rl.Vector3Normalize(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}),
			rl.Vector3Normalize(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}),
		},
	}
}

// NewOBBFromBox creates an OBB from a collider's center, size, rotation and scale.
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaled := rl.Vector3{
		X: absf(size.X * scale.X),
		Y: absf(size.Y * scale.Y),
		Z: absf(size.Z * scale.Z),
	}
	return NewOBB(center, scaled, rotation)
}

// NewAABBasOBB wraps an AABB as an OBB with identity axes.
func NewAABBasOBB(box AABB) OBB {
	return OBB{
		Center:   box.Center(),
		HalfSize: rl.Vector3Scale(box.Size(), 0.5),
		Axes:     identityAxes,
	}
}

// projectRadius is the half-length of o's projection onto axis.
func (o OBB) projectRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// IntersectsOBB runs the separating axis test over the 15 candidate axes.
func (o OBB) IntersectsOBB(b OBB) bool {
	t := rl.Vector3Subtract(b.Center, o.Center)

	separated := func(axis rl.Vector3) bool {
		return absf(rl.Vector3DotProduct(t, axis)) > o.projectRadius(axis)+b.projectRadius(axis)
	}

	for i := 0; i < 3; i++ {
		if separated(o.Axes[i]) || separated(b.Axes[i]) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(o.Axes[i], b.Axes[j])
			// parallel edges give no axis
			if rl.Vector3Length(axis) <= 0.0001 {
				continue
			}
			if separated(rl.Vector3Normalize(axis)) {
				return false
			}
		}
	}
	return true
}

// IntersectsSphere reports whether the sphere touches the box.
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	d := rl.Vector3Subtract(ClosestPointOnOBB(o, center), center)
	return rl.Vector3DotProduct(d, d) <= radius*radius
}

// ClosestPointOnOBB returns the point of the box nearest to point. Points inside the
// box are returned unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(point, o.Center)
	extents := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	result := o.Center
	for i, axis := range o.Axes {
		d := clampf(rl.Vector3DotProduct(local, axis), -extents[i], extents[i])
		result = rl.Vector3Add(result, rl.Vector3Scale(axis, d))
	}
	return result
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
