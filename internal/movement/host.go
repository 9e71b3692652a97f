package movement

import "github.com/go-gl/mathgl/mgl32"

// Input is the read side of the player's input state. The controller clears a pending
// jump through SetJump while airborne.
type Input interface {
	Move() mgl32.Vec2
	Look() mgl32.Vec2
	Jump() bool
	SetJump(bool)
	Sprint() bool
	Crouch() bool
	IsCurrentDeviceMouse() bool
}

// Body is the collision body being driven.
type Body interface {
	// Velocity is the body's velocity after its last move.
	Velocity() mgl32.Vec3
	SetHeight(h float32)
	Move(motion mgl32.Vec3)
}

// Transform is the entity's scene transform.
type Transform interface {
	Position() mgl32.Vec3
	Right() mgl32.Vec3
	Forward() mgl32.Vec3
	RotateYaw(degrees float32)
}

// Pivot is the camera target that receives the pitch.
type Pivot interface {
	SetLocalPitch(degrees float32)
}

// Overlapper answers point-in-time sphere overlap queries. Trigger volumes are ignored.
type Overlapper interface {
	CheckSphere(center mgl32.Vec3, radius float32, layers LayerMask) bool
}

// Host bundles the engine objects a Controller drives.
type Host struct {
	Input     Input
	Body      Body
	Transform Transform
	Pivot     Pivot
	World     Overlapper
}
