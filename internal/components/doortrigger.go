package components

import "github.com/MironCo/mirgo-player/internal/engine"

// DoorTrigger marks a trigger volume as an exit to another scene.
type DoorTrigger struct {
	engine.BaseComponent
	TargetScene int
}

func NewDoorTrigger(target int) *DoorTrigger {
	return &DoorTrigger{TargetScene: target}
}
