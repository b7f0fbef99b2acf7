package sapling

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTickerRunsFramesUntilStopped(t *testing.T) {
	tree := NewSceneTree()
	var updates int
	var total float64
	root := NewNode("root")
	root.OnUpdate = func(dt float64) {
		updates++
		total += dt
	}
	mustAttach(t, tree, root, nil)

	tk := NewTicker(tree, 1000)
	tk.OnFrame = func(frame uint64) {
		if frame == 5 {
			tk.Stop()
		}
	}
	done := make(chan error, 1)
	go func() { done <- tk.Start(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not stop")
	}
	if updates != 5 || tk.Frames() != 5 {
		t.Errorf("updates = %d, frames = %d, want 5", updates, tk.Frames())
	}
	if total <= 0 {
		t.Error("dt should be positive")
	}
	if tk.Running() {
		t.Error("ticker should not be running after Start returns")
	}
}

func TestTickerDispatchesPostedEvents(t *testing.T) {
	tree := NewSceneTree()
	var got []InputEvent
	root := NewNode("root")
	root.OnInput = func(ev InputEvent) bool {
		got = append(got, ev)
		return false
	}
	mustAttach(t, tree, root, nil)

	tk := NewTicker(tree, 500)
	if !tk.Post("a") || !tk.Post("b") {
		t.Fatal("Post should accept events")
	}
	tk.OnFrame = func(uint64) { tk.Stop() }
	if err := tk.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("dispatched = %v, want [a b]", got)
	}
}

func TestTickerContextCancel(t *testing.T) {
	tk := NewTicker(NewSceneTree(), 100)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := tk.Start(ctx); err != nil {
		t.Errorf("Start = %v, want nil on cancel", err)
	}
}

func TestTickerDoubleStart(t *testing.T) {
	tk := NewTicker(NewSceneTree(), 1000)
	started := make(chan struct{})
	var once bool
	tk.OnFrame = func(uint64) {
		if !once {
			once = true
			close(started)
		}
	}
	done := make(chan error, 1)
	go func() { done <- tk.Start(context.Background()) }()
	<-started

	if err := tk.Start(context.Background()); !errors.Is(err, ErrSchedulerRunning) {
		t.Errorf("second Start = %v, want ErrSchedulerRunning", err)
	}
	tk.Stop()
	if err := <-done; err != nil {
		t.Errorf("first Start = %v", err)
	}
}

func TestNewTickerDefaults(t *testing.T) {
	tk := NewTicker(NewSceneTree(), 0)
	if tk.Interval() != time.Second/DefaultTPS {
		t.Errorf("Interval = %v, want %v", tk.Interval(), time.Second/DefaultTPS)
	}
}

func TestTickerPostDropsWhenFull(t *testing.T) {
	tk := NewTicker(NewSceneTree(), 60)
	for i := 0; i < cap(tk.events); i++ {
		if !tk.Post(i) {
			t.Fatalf("Post %d rejected before the queue was full", i)
		}
	}
	if tk.Post("overflow") {
		t.Error("Post should report a dropped event")
	}
}
