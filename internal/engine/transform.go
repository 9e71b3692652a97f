package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Forward returns the horizontal facing for the transform's yaw. Yaw 0 faces -Z and
// positive yaw turns clockwise seen from above.
func (t Transform) Forward() rl.Vector3 {
	s, c := math32.Sincos(mgl32.DegToRad(t.Rotation.Y))
	return rl.Vector3{X: s, Y: 0, Z: -c}
}

// Right returns the horizontal right vector for the transform's yaw.
func (t Transform) Right() rl.Vector3 {
	s, c := math32.Sincos(mgl32.DegToRad(t.Rotation.Y))
	return rl.Vector3{X: c, Y: 0, Z: s}
}

// RotateYaw turns the transform about the world up axis, keeping yaw in [0, 360).
func (t *Transform) RotateYaw(degrees float32) {
	yaw := math32.Mod(t.Rotation.Y+degrees, 360)
	if yaw < 0 {
		yaw += 360
	}
	t.Rotation.Y = yaw
}

// ToVec3 and FromVec3 convert between engine vectors and the mgl32 vectors used by
// engine-free packages.
func ToVec3(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func FromVec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
