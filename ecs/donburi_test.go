package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/skilltree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []skilltree.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e skilltree.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(skilltree.InteractionEvent{
		Type:    skilltree.EventHover,
		NodeID:  "fireball",
		Hovered: true,
		ScreenX: 100,
		ScreenY: 200,
	})
	store.EmitEvent(skilltree.InteractionEvent{
		Type:  skilltree.EventZoom,
		Scale: 1.5,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != skilltree.EventHover || e0.NodeID != "fireball" || !e0.Hovered {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.ScreenX != 100 || e0.ScreenY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.ScreenX, e0.ScreenY)
	}
	if e1 := received[1]; e1.Type != skilltree.EventZoom || e1.Scale != 1.5 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store skilltree.EntityStore = NewDonburiStore(world)
	_ = store
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e skilltree.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e skilltree.InteractionEvent) {
		count2++
	})

	store.EmitEvent(skilltree.InteractionEvent{Type: skilltree.EventActivate, NodeID: "a"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestViewportPublishesActivation(t *testing.T) {
	g := skilltree.NewGraph()
	g.DefineNode("n", skilltree.Definition{Descriptor: skilltree.Descriptor{Title: "Node"}})
	g.AddNode(skilltree.GraphEntry{ID: "n", Kind: skilltree.KindSkill, State: skilltree.StateAffordable})

	vp, err := skilltree.NewViewport(0, 0, 800, 600, g, skilltree.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Unix(1000, 0)
	vp.Clock = func() time.Time { return now }

	world := donburi.NewWorld()
	vp.SetEntityStore(NewDonburiStore(world))
	var log ActivationLog
	SubscribeActivations(world, &log)

	// World origin sits at the viewport center.
	vp.Press(400, 300)
	vp.Release(400, 300)
	InteractionEventType.ProcessEvents(world)

	if len(log.Requests) != 1 || log.Requests[0] != "n" {
		t.Errorf("Requests = %v, want [n]", log.Requests)
	}
}
