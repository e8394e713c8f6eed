package tilt

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the user resize the window; the scene viewport
	// follows the window size.
	Resizable bool
	// ShowFPS draws an FPS/TPS overlay on top of the scene.
	ShowFPS bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(time.Second/time.Duration(ebiten.TPS()), g.scene)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(w, h int) (int, int) {
	g.scene.Resize(float64(w), float64(h))
	return w, h
}

// Run opens a window and drives the scene until the window closes or an
// update returns an error. For full control, implement ebiten.Game yourself
// and call Scene.Update and Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}
