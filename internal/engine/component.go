package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LateUpdater is implemented by components that need to run after every Update of the
// frame, such as camera look.
type LateUpdater interface {
	LateUpdate(deltaTime float32)
}

// TriggerHandler is implemented by components that react to a body resting inside a
// trigger volume. OnTriggerStay fires once per tick for as long as the overlap lasts.
type TriggerHandler interface {
	OnTriggerStay(other *GameObject)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
