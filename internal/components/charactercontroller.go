package components

import (
	"github.com/MironCo/mirgo-player/internal/engine"
	"github.com/MironCo/mirgo-player/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionFlags reports which sides of the body touched something during the last Move.
type CollisionFlags uint8

const (
	CollidedSides CollisionFlags = 1 << iota
	CollidedAbove
	CollidedBelow
)

// CharacterController is a box-shaped kinematic body. Move slides it along solid
// colliders and climbs steps up to StepHeight. The object's position is the body's
// center.
//
// Add it before any component that calls Move, so Update records the frame's delta
// time first.
type CharacterController struct {
	engine.BaseComponent

	Height     float32 // Total height of the box
	Radius     float32 // Half-width of the box
	StepHeight float32 // Max height of steps to climb

	velocity  rl.Vector3
	flags     CollisionFlags
	deltaTime float32
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     2.0,
		Radius:     0.5,
		StepHeight: 0.3,
	}
}

func (c *CharacterController) Update(deltaTime float32) {
	c.deltaTime = deltaTime
}

// SetHeight resizes the body keeping its feet in place.
func (c *CharacterController) SetHeight(h float32) {
	if h == c.Height {
		return
	}
	if g := c.GetGameObject(); g != nil {
		g.Transform.Position.Y += (h - c.Height) / 2
	}
	c.Height = h
}

// Velocity is the displacement of the last Move divided by the frame time.
func (c *CharacterController) Velocity() rl.Vector3 {
	return c.velocity
}

func (c *CharacterController) Flags() CollisionFlags {
	return c.flags
}

// IsGrounded reports whether the last Move ended on top of a collider.
func (c *CharacterController) IsGrounded() bool {
	return c.flags&CollidedBelow != 0
}

// GetBounds returns the body's world-space box.
func (c *CharacterController) GetBounds() physics.AABB {
	g := c.GetGameObject()
	return c.boundsAt(g.Transform.Position)
}

func (c *CharacterController) boundsAt(pos rl.Vector3) physics.AABB {
	return physics.NewAABBFromCenter(pos, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

// Move moves the character by the given motion vector, handling collisions and steps
// Returns the actual displacement after collision resolution
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	c.flags = 0
	originalPos := g.Transform.Position

	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	// Horizontal first so steps are climbed before gravity settles the body.
	horizontal := rl.Vector3{X: motion.X, Y: 0, Z: motion.Z}
	if horizontal.X != 0 || horizontal.Z != 0 {
		c.moveWithCollision(g, horizontal, colliders)
	}
	vertical := rl.Vector3{X: 0, Y: motion.Y, Z: 0}
	if vertical.Y != 0 {
		c.moveWithCollision(g, vertical, colliders)
	}

	actual := rl.Vector3Subtract(g.Transform.Position, originalPos)
	if c.deltaTime > 0 {
		c.velocity = rl.Vector3Scale(actual, 1/c.deltaTime)
	} else {
		c.velocity = rl.Vector3{}
	}
	return actual
}

func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	halfHeight := c.Height / 2

	for _, other := range colliders {
		if other == g {
			continue
		}
		boxCol := engine.GetComponent[*BoxCollider](other)
		if boxCol == nil || boxCol.IsTrigger {
			continue
		}

		static := boxCol.GetAABB()
		body := c.boundsAt(g.Transform.Position)
		if !body.Intersects(static) {
			continue
		}

		pushOut := body.Resolve(static)

		if pushOut.Y == 0 && motion.Y == 0 {
			feetY := g.Transform.Position.Y - halfHeight
			step := static.Max.Y - feetY

			if step > 0 && step <= c.StepHeight {
				stepped := g.Transform.Position
				stepped.Y += step + 0.001
				if !c.boundsAt(stepped).Intersects(static) {
					g.Transform.Position = stepped
					c.flags |= CollidedBelow
					continue
				}
			}
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)

		switch {
		case pushOut.Y > 0:
			c.flags |= CollidedBelow
		case pushOut.Y < 0:
			c.flags |= CollidedAbove
		default:
			c.flags |= CollidedSides
		}
	}
}
