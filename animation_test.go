package sapling

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	s := NewSprite(nil)
	s.SetPosition(10, 20)

	g := TweenPosition(s, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(s.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", s.X)
	}
	if math.Abs(s.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", s.Y)
	}
}

func TestTweenScaleHalfway(t *testing.T) {
	s := NewSprite(nil)
	g := TweenScale(s, 3, 5, 1.0, ease.Linear)
	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(s.ScaleX-2) > 0.01 || math.Abs(s.ScaleY-3) > 0.01 {
		t.Errorf("scale = (%f, %f), want ~(2, 3)", s.ScaleX, s.ScaleY)
	}
}

func TestTweenColorAndAlpha(t *testing.T) {
	s := NewSprite(nil)
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	g := TweenColor(s, target, 1.0, ease.Linear)
	a := TweenAlpha(s, 0, 1.0, ease.Linear)
	g.Update(1)
	a.Update(1)

	if math.Abs(s.Color.G-1) > 0.01 || math.Abs(s.Color.B-0.5) > 0.01 || math.Abs(s.Color.A-0.5) > 0.01 {
		t.Errorf("Color = %+v, want %+v", s.Color, target)
	}
	if math.Abs(s.Alpha) > 0.01 {
		t.Errorf("Alpha = %f, want 0", s.Alpha)
	}
}

func TestTweenOnDoneFiresOnce(t *testing.T) {
	s := NewSprite(nil)
	g := TweenRotation(s, math.Pi, 0.5, ease.Linear)
	calls := 0
	g.OnDone = func() { calls++ }
	g.Update(0.5)
	g.Update(0.5)
	if calls != 1 {
		t.Errorf("OnDone called %d times, want 1", calls)
	}
}

func TestTweenReset(t *testing.T) {
	s := NewSprite(nil)
	g := TweenRotation(s, 2, 1.0, ease.Linear)
	g.Update(1)
	g.Reset()
	if g.Done {
		t.Error("Reset should clear Done")
	}
	if math.Abs(s.Rotation) > 0.01 {
		t.Errorf("Rotation = %f, want 0 after Reset", s.Rotation)
	}
}

func TestTweenBehaviorDrivenByStep(t *testing.T) {
	tree := NewSceneTree()
	n := NewSpriteNode("mover", nil)
	s := n.Sprite()
	g := TweenPosition(s, 60, 0, 1.0, ease.Linear)
	n.OnUpdate = g.Behavior()
	mustAttach(t, tree, n, nil)

	for i := 0; i < 4; i++ {
		tree.Step(0.25)
	}
	if !g.Done {
		t.Fatal("tween should finish after four quarter steps")
	}
	if math.Abs(s.X-60) > 0.5 {
		t.Errorf("X = %f, want ~60", s.X)
	}
}
