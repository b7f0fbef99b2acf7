package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

const (
	boxSize  = 24
	maxBoxes = 64
)

// demo builds a small scene: bouncing boxes under a "boxes" layer, a pulsing
// marker driven by tweens, and input handlers that spawn and clear boxes.
type demo struct {
	tree          *sapling.SceneTree
	width, height float64
	layer         *sapling.Node
	paused        bool
	spawned       int
}

func newDemo(tree *sapling.SceneTree, width, height int) *demo {
	return &demo{tree: tree, width: float64(width), height: float64(height)}
}

func (d *demo) build() error {
	root := sapling.NewNode("root")
	root.OnInput = d.handleInput
	if err := d.tree.Attach(root, nil); err != nil {
		return err
	}

	d.layer = sapling.NewNode("boxes")
	if err := d.tree.Attach(d.layer, root); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		x := float64(40 + i*60)
		if err := d.tree.Attach(d.newBox(x, 40+float64(i)*30, 2, 1.5), d.layer); err != nil {
			return err
		}
	}

	marker := sapling.NewSpriteNode("marker", nil)
	s := marker.Sprite()
	s.SetScale(boxSize, boxSize)
	s.SetPosition(d.width/2, d.height/2)
	s.SetPivot(0.5, 0.5)
	s.Color = sapling.Color{R: 1, G: 0.6, B: 0.2, A: 1}
	spin := sapling.TweenRotation(s, 2*math.Pi, 2, ease.InOutQuad)
	spin.OnDone = spin.Reset
	marker.OnUpdate = spin.Behavior()
	return d.tree.Attach(marker, root)
}

// newBox creates a bouncing solid box moving (dx, dy) pixels per tick at 60 Hz.
func (d *demo) newBox(x, y, dx, dy float64) *sapling.Node {
	d.spawned++
	n := sapling.NewSpriteNode(fmt.Sprintf("box%d", d.spawned), nil)
	s := n.Sprite()
	s.SetScale(boxSize, boxSize)
	s.SetPosition(x, y)
	s.Color = sapling.Color{R: 80.0 / 255.0, G: 180.0 / 255.0, B: 1, A: 1}

	vx, vy := dx*sapling.DefaultTPS, dy*sapling.DefaultTPS
	n.OnUpdate = func(dt float64) {
		if d.paused {
			return
		}
		s.SetPosition(s.X+vx*dt, s.Y+vy*dt)
		if s.X < 0 || s.X+boxSize > d.width {
			vx = -vx
		}
		if s.Y < 0 || s.Y+boxSize > d.height {
			vy = -vy
		}
	}
	return n
}

// handleInput runs during the input pass, so the Attach and Detach calls are
// deferred until the pass ends.
func (d *demo) handleInput(ev sapling.InputEvent) bool {
	switch e := ev.(type) {
	case sapling.KeyEvent:
		if !e.Pressed {
			return false
		}
		switch e.Key {
		case ebiten.KeySpace:
			d.paused = !d.paused
			return true
		case ebiten.KeyC:
			for _, child := range d.layer.Children() {
				_ = d.tree.Detach(child)
			}
			return true
		}
	case sapling.PointerEvent:
		if e.Pressed && e.Button == sapling.MouseButtonLeft && d.layer.NumChildren() < maxBoxes {
			_ = d.tree.Attach(d.newBox(e.X, e.Y, -1.5, 2), d.layer)
			return true
		}
	}
	return false
}
