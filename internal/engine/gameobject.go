package engine

import (
	"slices"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision layers. Probe masks select layers by bit, see movement.LayerMask.
const (
	LayerDefault = 0
	LayerPlayer  = 8
)

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      int
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Layer:  LayerDefault,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	return FindComponent[T](g)
}

// FindComponent returns the first component implementing interface T.
func FindComponent[T any](g *GameObject) T {
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	var zero T
	return zero
}

// FindComponents returns every component implementing interface T.
func FindComponents[T any](g *GameObject) []T {
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	g.started = true
	for _, c := range g.components {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) LateUpdate(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if lu, ok := c.(LateUpdater); ok {
			lu.LateUpdate(deltaTime)
		}
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if i := slices.Index(g.Children, child); i >= 0 {
		g.Children = slices.Delete(g.Children, i, i+1)
		child.Parent = nil
	}
}

// WorldPosition places the local position in the parent's scaled and rotated frame.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parent := g.Parent
	local := ToVec3(g.Transform.Position)
	scale := ToVec3(parent.WorldScale())
	scaled := mgl32.Vec3{local[0] * scale[0], local[1] * scale[1], local[2] * scale[2]}

	rotated := rotationMatrix(parent.WorldRotation()).Mul3x1(scaled)
	return FromVec3(ToVec3(parent.WorldPosition()).Add(rotated))
}

// rotationMatrix applies pitch, then yaw, then roll. Yaw is negated because positive yaw
// turns clockwise seen from above, the opposite of a right-handed turn about +Y.
func rotationMatrix(euler rl.Vector3) mgl32.Mat3 {
	rx := mgl32.Rotate3DX(mgl32.DegToRad(euler.X))
	ry := mgl32.Rotate3DY(mgl32.DegToRad(-euler.Y))
	rz := mgl32.Rotate3DZ(mgl32.DegToRad(euler.Z))
	return rz.Mul3(ry).Mul3(rx)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
