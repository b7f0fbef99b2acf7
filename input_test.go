package sapling

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectClickDeliversOnePerPoll(t *testing.T) {
	var p InputPoller
	p.InjectClick(50, 60)
	if p.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", p.PendingInjections())
	}

	evs := p.Poll(nil)
	if len(evs) != 1 {
		t.Fatalf("frame 1: got %d events, want 1", len(evs))
	}
	press, ok := evs[0].(PointerEvent)
	if !ok || !press.Pressed || press.X != 50 || press.Y != 60 || press.Button != MouseButtonLeft {
		t.Errorf("frame 1 = %+v, want left press at (50, 60)", evs[0])
	}

	evs = p.Poll(evs[:0])
	release, ok := evs[0].(PointerEvent)
	if !ok || release.Pressed {
		t.Errorf("frame 2 = %+v, want release", evs[0])
	}
	if p.PendingInjections() != 0 {
		t.Errorf("queue should be empty, got %d", p.PendingInjections())
	}
}

func TestInjectKey(t *testing.T) {
	var p InputPoller
	p.InjectKey(ebiten.KeySpace)
	first := p.Poll(nil)[0].(KeyEvent)
	second := p.Poll(nil)[0].(KeyEvent)
	if first.Key != ebiten.KeySpace || !first.Pressed {
		t.Errorf("first = %+v, want Space press", first)
	}
	if second.Key != ebiten.KeySpace || second.Pressed {
		t.Errorf("second = %+v, want Space release", second)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	var p InputPoller
	p.InjectDrag(0, 0, 40, 80, 5)
	if p.PendingInjections() != 5 {
		t.Fatalf("expected 5 events, got %d", p.PendingInjections())
	}
	var evs []PointerEvent
	for p.PendingInjections() > 0 {
		evs = append(evs, p.Poll(nil)[0].(PointerEvent))
	}
	if !evs[0].Pressed || evs[0].Moved {
		t.Errorf("first should be a press: %+v", evs[0])
	}
	for i, want := range []float64{10, 20, 30} {
		ev := evs[i+1]
		if !ev.Moved || ev.X != want || ev.Y != want*2 {
			t.Errorf("move %d = %+v, want (%v, %v)", i, ev, want, want*2)
		}
	}
	if last := evs[4]; last.Pressed || last.X != 40 || last.Y != 80 {
		t.Errorf("last = %+v, want release at (40, 80)", last)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	var p InputPoller
	p.InjectDrag(0, 0, 10, 10, 0)
	if p.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d", p.PendingInjections())
	}
}

func TestInjectArbitraryEvent(t *testing.T) {
	var p InputPoller
	p.InjectEvent(WheelEvent{DY: -1})
	p.InjectEvent("custom")
	if ev := p.Poll(nil)[0]; ev != (WheelEvent{DY: -1}) {
		t.Errorf("first = %v", ev)
	}
	if ev := p.Poll(nil)[0]; ev != "custom" {
		t.Errorf("second = %v", ev)
	}
}
