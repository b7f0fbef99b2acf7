package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvent reports a key press or release.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
	Mods    KeyModifiers
}

// PointerEvent reports a mouse button press or release, or a move when
// Moved is set.
type PointerEvent struct {
	X, Y    float64
	Button  MouseButton
	Pressed bool
	Moved   bool
	Mods    KeyModifiers
}

// WheelEvent reports mouse wheel movement.
type WheelEvent struct {
	DX, DY float64
}

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// InputPoller turns Ebitengine's polled input state into discrete events,
// one batch per tick. Synthetic events queued with the Inject methods are
// delivered first, one per Poll, and suppress real input for that tick.
type InputPoller struct {
	keys        []ebiten.Key
	lastX       int
	lastY       int
	seenCursor  bool
	injectQueue []InputEvent
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Poll appends this tick's events to buf and returns it.
func (p *InputPoller) Poll(buf []InputEvent) []InputEvent {
	if ev, ok := p.nextInjected(); ok {
		return append(buf, ev)
	}

	mods := readModifiers()

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, KeyEvent{Key: k, Pressed: true, Mods: mods})
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		buf = append(buf, KeyEvent{Key: k, Pressed: false, Mods: mods})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if p.seenCursor && (cx != p.lastX || cy != p.lastY) {
		buf = append(buf, PointerEvent{X: x, Y: y, Moved: true, Mods: mods})
	}
	p.lastX, p.lastY, p.seenCursor = cx, cy, true

	for _, mb := range mouseButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(mb.ebiten):
			buf = append(buf, PointerEvent{X: x, Y: y, Button: mb.button, Pressed: true, Mods: mods})
		case inpututil.IsMouseButtonJustReleased(mb.ebiten):
			buf = append(buf, PointerEvent{X: x, Y: y, Button: mb.button, Pressed: false, Mods: mods})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		buf = append(buf, WheelEvent{DX: dx, DY: dy})
	}
	return buf
}
