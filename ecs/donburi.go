package ecs

import (
	"github.com/phanxgames/skilltree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for skilltree viewport
// events.
var InteractionEventType = events.NewEventType[skilltree.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType until ProcessEvents runs.
func NewDonburiStore(world donburi.World) skilltree.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event skilltree.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// ActivationLog collects activation requests from a world, for systems
// that apply them in a batch.
type ActivationLog struct {
	Requests []string
}

// SubscribeActivations records the node id of every activation event
// published into world in log.
func SubscribeActivations(world donburi.World, log *ActivationLog) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e skilltree.InteractionEvent) {
		if e.Type == skilltree.EventActivate {
			log.Requests = append(log.Requests, e.NodeID)
		}
	})
}
