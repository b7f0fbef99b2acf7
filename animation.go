package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a Sprite simultaneously.
// Create one with TweenPosition, TweenScale, TweenColor, TweenAlpha or
// TweenRotation and either call Update(dt) yourself or install Behavior as a
// node's OnUpdate so the tween advances during the tree's update pass.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Sprite
	Done   bool

	// OnDone, if set, is called once when the group finishes.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.target.MarkDirty()
	if allDone {
		g.Done = true
		if g.OnDone != nil {
			g.OnDone()
		}
	}
}

// Behavior returns a function suitable for Node.OnUpdate.
func (g *TweenGroup) Behavior() func(dt float64) {
	return func(dt float64) { g.Update(float32(dt)) }
}

// Reset rewinds every tween to its start.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
		val, _ := g.tweens[i].Set(0)
		*g.fields[i] = float64(val)
	}
	g.target.MarkDirty()
	g.Done = false
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates X and Y to (toX, toY).
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(&s.X, toX, duration, fn)
	g.add(&s.Y, toY, duration, fn)
	return g
}

// TweenScale animates ScaleX and ScaleY.
func TweenScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(&s.ScaleX, toSX, duration, fn)
	g.add(&s.ScaleY, toSY, duration, fn)
	return g
}

// TweenColor animates all four components of Color.
func TweenColor(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(&s.Color.R, to.R, duration, fn)
	g.add(&s.Color.G, to.G, duration, fn)
	g.add(&s.Color.B, to.B, duration, fn)
	g.add(&s.Color.A, to.A, duration, fn)
	return g
}

// TweenAlpha animates Alpha.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(&s.Alpha, to, duration, fn)
	return g
}

// TweenRotation animates Rotation (radians).
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: s}
	g.add(&s.Rotation, to, duration, fn)
	return g
}
