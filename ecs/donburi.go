package ecs

import (
	"github.com/phanxgames/tilt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TiltChangeEventType is the Donburi event type for tiltChange notifications.
var TiltChangeEventType = events.NewEventType[tilt.TiltChangeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Notifications are published to TiltChangeEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tilt.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event tilt.TiltChangeEvent) {
	TiltChangeEventType.Publish(s.world, event)
}
