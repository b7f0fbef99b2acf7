package ecs

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_ReceivesDispatchedEvents(t *testing.T) {
	world := donburi.NewWorld()
	tree := sapling.NewSceneTree(sapling.WithEventSink(NewDonburiSink(world)))
	if err := tree.Attach(sapling.NewNode("root"), nil); err != nil {
		t.Fatal(err)
	}

	var received []sapling.InputEvent
	InputEventType.Subscribe(world, func(w donburi.World, ev sapling.InputEvent) {
		received = append(received, ev)
	})

	tree.Dispatch(sapling.KeyEvent{Key: ebiten.KeySpace, Pressed: true})
	tree.Dispatch(sapling.PointerEvent{X: 10, Y: 20, Button: sapling.MouseButtonRight})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	InputEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if k, ok := received[0].(sapling.KeyEvent); !ok || k.Key != ebiten.KeySpace || !k.Pressed {
		t.Errorf("event 0: %+v", received[0])
	}
	if p, ok := received[1].(sapling.PointerEvent); !ok || p.X != 10 || p.Button != sapling.MouseButtonRight {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	InputEventType.Subscribe(world, func(w donburi.World, ev sapling.InputEvent) { count1++ })
	InputEventType.Subscribe(world, func(w donburi.World, ev sapling.InputEvent) { count2++ })

	sink.EmitEvent(sapling.WheelEvent{DY: 1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
