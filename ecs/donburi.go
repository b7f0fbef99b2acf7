package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for sapling input events.
var InputEventType = events.NewEventType[sapling.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InputEventType; consume them with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sapling.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(ev sapling.InputEvent) {
	InputEventType.Publish(s.world, ev)
}
