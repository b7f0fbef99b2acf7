package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window and loop settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int
	Background Color
	Resizable  bool
	ShowFPS    bool

	// Script and ScreenshotDir configure the Game; see Game.
	Script        *ScriptRunner
	ScreenshotDir string
}

// Game adapts a SceneTree to ebiten.Game. Ebitengine is the scheduler: each
// Update polls input, dispatches the events, and steps the tree by one tick;
// each Draw clears to the background color and paints the draw order.
type Game struct {
	Tree       *SceneTree
	Input      InputPoller
	Background Color

	// OnUpdate, if set, runs every tick between the input and update passes.
	// Returning an error (e.g. ebiten.Termination) ends the game.
	OnUpdate func() error

	// Script, if set, injects scripted input each tick. When it finishes
	// and ExitOnScriptDone is set, Update returns ebiten.Termination.
	Script           *ScriptRunner
	ExitOnScriptDone bool

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string

	width, height int
	events        []InputEvent
	screenshots   []string
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game for tree with a fixed logical screen size.
func NewGame(tree *SceneTree, width, height int) *Game {
	return &Game{Tree: tree, width: width, height: height}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Script != nil {
		g.Script.step(g)
		if g.Script.Done() && g.ExitOnScriptDone && len(g.screenshots) == 0 {
			return ebiten.Termination
		}
	}
	g.events = g.Input.Poll(g.events[:0])
	for _, ev := range g.events {
		g.Tree.Dispatch(ev)
	}
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	g.Tree.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background.A > 0 {
		screen.Fill(g.Background.RGBA())
	}
	g.Tree.Draw(screen)
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width <= 0 || g.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and runs tree until the window is closed.
func Run(tree *SceneTree, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		if tree.Root() == nil {
			if err := tree.Attach(NewNode("root"), nil); err != nil {
				return err
			}
		}
		if err := tree.Attach(NewFPSWidget(), tree.Root()); err != nil {
			return err
		}
	}
	g := NewGame(tree, cfg.Width, cfg.Height)
	g.Background = cfg.Background
	g.Script = cfg.Script
	g.ExitOnScriptDone = cfg.Script != nil
	g.ScreenshotDir = cfg.ScreenshotDir
	return ebiten.RunGame(g)
}
