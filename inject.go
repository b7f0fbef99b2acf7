package sapling

import "github.com/hajimehoshi/ebiten/v2"

// InjectEvent queues an arbitrary event. It is delivered by the next Poll
// that finds it at the head of the queue.
func (p *InputPoller) InjectEvent(ev InputEvent) {
	p.injectQueue = append(p.injectQueue, ev)
}

// InjectKey queues a key press followed by a release. Consumes two ticks.
func (p *InputPoller) InjectKey(key ebiten.Key) {
	p.InjectEvent(KeyEvent{Key: key, Pressed: true})
	p.InjectEvent(KeyEvent{Key: key, Pressed: false})
}

// InjectPress queues a left-button press at the given screen coordinates.
func (p *InputPoller) InjectPress(x, y float64) {
	p.InjectEvent(PointerEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: true})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (p *InputPoller) InjectRelease(x, y float64) {
	p.InjectEvent(PointerEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (p *InputPoller) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (p *InputPoller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectEvent(PointerEvent{
			X:       fromX + (toX-fromX)*t,
			Y:       fromY + (toY-fromY)*t,
			Button:  MouseButtonLeft,
			Pressed: true,
			Moved:   true,
		})
	}
	p.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (p *InputPoller) PendingInjections() int {
	return len(p.injectQueue)
}

// nextInjected pops the head of the inject queue.
func (p *InputPoller) nextInjected() (InputEvent, bool) {
	if len(p.injectQueue) == 0 {
		return nil, false
	}
	ev := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue[len(p.injectQueue)-1] = nil
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return ev, true
}
