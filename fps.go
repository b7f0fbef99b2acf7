package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the FPS widget redraws its text, in seconds.
const fpsRefreshInterval = 0.5

// NewFPSWidget creates a drawable node showing the current FPS and TPS.
// The text is refreshed during the update pass every half second.
func NewFPSWidget() *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	node := NewSpriteNode("fps_widget", img)

	elapsed := fpsRefreshInterval
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < fpsRefreshInterval {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
