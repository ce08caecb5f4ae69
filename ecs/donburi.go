package ecs

import (
	primer "github.com/meghana2124/PrimerTools"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NodeEventType is the Donburi event type for primer node lifecycle events.
// Subscribe to this in your ECS systems to mirror nodes as entities.
var NodeEventType = events.NewEventType[primer.NodeEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Node events are published to NodeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) primer.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event primer.NodeEvent) {
	NodeEventType.Publish(s.world, event)
}
