package tilt

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS overlay text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay shows FPS, TPS and the number of running transitions in the
// top-left corner. Run draws it when RunConfig.ShowFPS is set.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
	stale   bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{stale: true}
}

func (o *fpsOverlay) update(dt time.Duration, scene *Scene) {
	o.elapsed += dt
	if !o.stale && o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0
	o.stale = false

	if o.img == nil {
		// 140x48 fits three DebugPrint lines.
		o.img = ebiten.NewImage(140, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nAnimating: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), countAnimating(scene.root)))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
