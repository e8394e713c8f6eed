package tilt

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// meshDivisions is the grid resolution used to draw a projected
	// surface. Triangles are mapped affinely, so the grid keeps the
	// perspective distortion visually correct.
	meshDivisions = 8

	// gradientSteps is the height of a gradient texture.
	gradientSteps = 64
)

// drawCache holds per-surface GPU images reused across frames.
type drawCache struct {
	offscreen *ebiten.Image
	mask      *ebiten.Image
	maskKey   [3]float64 // width, height, radius the mask was built for
	verts     []ebiten.Vertex
	indices   []uint16
}

func (c *drawCache) release() {
	if c.offscreen != nil {
		c.offscreen.Deallocate()
	}
	if c.mask != nil {
		c.mask.Deallocate()
	}
	*c = drawCache{}
}

// ensureOffscreen returns a cleared offscreen image of at least w x h,
// reallocated when the size changes.
func (c *drawCache) ensureOffscreen(w, h int) *ebiten.Image {
	if c.offscreen != nil {
		b := c.offscreen.Bounds()
		if b.Dx() != w || b.Dy() != h {
			c.offscreen.Deallocate()
			c.offscreen = nil
		}
	}
	if c.offscreen == nil {
		c.offscreen = ebiten.NewImage(w, h)
	} else {
		c.offscreen.Clear()
	}
	return c.offscreen
}

// Draw renders the document into screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawSurface(screen, s.root, 0, 0, 1)
	s.flushScreenshots(screen)
}

// drawSurface draws n and its subtree into dst, whose origin corresponds to
// the viewport point (offX, offY).
func drawSurface(dst *ebiten.Image, n *Surface, offX, offY, alpha float64) {
	if !n.Visible || n.disposed {
		return
	}
	r := n.anim.rendered
	a := alpha * r.Opacity
	if a <= 0 {
		return
	}
	box := n.Box()
	transformed := !r.Transform.IsZero()

	if !transformed && !n.Clip {
		paintSelf(dst, n, offX, offY, a)
		for _, c := range n.children {
			drawSurface(dst, c, offX, offY, a)
		}
		return
	}

	w, h := int(math.Ceil(box.Width)), int(math.Ceil(box.Height))
	if w <= 0 || h <= 0 {
		return
	}
	img := n.cache.ensureOffscreen(w, h)
	paintSelf(img, n, box.X, box.Y, 1)
	for _, c := range n.children {
		drawSurface(img, c, box.X, box.Y, 1)
	}
	if radius := n.cornerRadius(); radius > 0 {
		applyRoundedMask(img, &n.cache, box.Width, box.Height, radius)
	}

	if transformed {
		drawProjected(dst, img, &n.cache, box, r.Transform, offX, offY, a)
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(box.X-offX, box.Y-offY)
	op.ColorScale.ScaleAlpha(float32(a))
	dst.DrawImage(img, &op)
}

// paintSelf draws the surface's own fill: Image, else Gradient, else a
// solid Color. 2-D rotation turns around the pivot.
func paintSelf(dst *ebiten.Image, n *Surface, offX, offY, alpha float64) {
	var src *ebiten.Image
	var op ebiten.DrawImageOptions
	switch {
	case n.Image != nil:
		src = n.Image
		op.ColorScale.ScaleAlpha(float32(alpha))
	case n.Gradient != nil:
		src = n.Gradient.ensureTexture()
		op.ColorScale.ScaleAlpha(float32(alpha))
	case n.Color.A > 0:
		src = ensureWhitePixel()
		ca := float32(n.Color.A * alpha)
		op.ColorScale.Scale(float32(n.Color.R)*ca, float32(n.Color.G)*ca, float32(n.Color.B)*ca, ca)
	default:
		return
	}

	box := n.Box()
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	b := src.Bounds()
	op.GeoM.Scale(box.Width/float64(b.Dx()), box.Height/float64(b.Dy()))
	if rot := n.anim.rendered.Rotate; rot != 0 {
		px, py := n.Pivot.X*box.Width, n.Pivot.Y*box.Height
		op.GeoM.Translate(-px, -py)
		op.GeoM.Rotate(rot * math.Pi / 180)
		op.GeoM.Translate(px, py)
	}
	op.GeoM.Translate(box.X-offX, box.Y-offY)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, &op)
}

// drawProjected draws img, the flattened content of box, through the 3-D
// transform t as a subdivided triangle mesh.
func drawProjected(dst, img *ebiten.Image, c *drawCache, box Rect, t Transform3D, offX, offY, alpha float64) {
	const n = meshDivisions
	pr := newProjector(box, t)

	if cap(c.verts) < (n+1)*(n+1) {
		c.verts = make([]ebiten.Vertex, (n+1)*(n+1))
	}
	c.verts = c.verts[:(n+1)*(n+1)]
	a := float32(alpha)
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			u := box.Width * float64(i) / n
			v := box.Height * float64(j) / n
			px, py := pr.project(box.X+u, box.Y+v)
			c.verts[j*(n+1)+i] = ebiten.Vertex{
				DstX:   float32(px - offX),
				DstY:   float32(py - offY),
				SrcX:   float32(u),
				SrcY:   float32(v),
				ColorR: a,
				ColorG: a,
				ColorB: a,
				ColorA: a,
			}
		}
	}

	if len(c.indices) == 0 {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				i0 := uint16(j*(n+1) + i)
				i1 := i0 + 1
				i2 := i0 + uint16(n+1)
				i3 := i2 + 1
				c.indices = append(c.indices, i0, i1, i2, i1, i3, i2)
			}
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.Filter = ebiten.FilterLinear
	op.AntiAlias = true
	dst.DrawTriangles(c.verts, c.indices, img, &op)
}

// applyRoundedMask clears everything outside a rounded rectangle of the
// given size from img.
func applyRoundedMask(img *ebiten.Image, c *drawCache, w, h, radius float64) {
	radius = math.Min(radius, math.Min(w, h)/2)
	key := [3]float64{w, h, radius}
	if c.mask == nil || c.maskKey != key {
		if c.mask != nil {
			c.mask.Deallocate()
		}
		b := img.Bounds()
		c.mask = ebiten.NewImage(b.Dx(), b.Dy())
		c.maskKey = key

		white := ColorWhite.toRGBA()
		fw, fh, fr := float32(w), float32(h), float32(radius)
		vector.DrawFilledRect(c.mask, fr, 0, fw-2*fr, fh, white, true)
		vector.DrawFilledRect(c.mask, 0, fr, fw, fh-2*fr, white, true)
		vector.DrawFilledCircle(c.mask, fr, fr, fr, white, true)
		vector.DrawFilledCircle(c.mask, fw-fr, fr, fr, white, true)
		vector.DrawFilledCircle(c.mask, fr, fh-fr, fr, white, true)
		vector.DrawFilledCircle(c.mask, fw-fr, fh-fr, fr, white, true)
	}
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendDestinationIn
	img.DrawImage(c.mask, &op)
}

// ensureTexture builds the 1 x gradientSteps texture, top row To, bottom
// row From.
func (g *Gradient) ensureTexture() *ebiten.Image {
	if g.texture != nil {
		return g.texture
	}
	pix := make([]byte, 4*gradientSteps)
	for row := 0; row < gradientSteps; row++ {
		t := float64(row) / float64(gradientSteps-1)
		c := g.To.lerp(g.From, t).toRGBA()
		pix[row*4+0] = c.R
		pix[row*4+1] = c.G
		pix[row*4+2] = c.B
		pix[row*4+3] = c.A
	}
	g.texture = ebiten.NewImage(1, gradientSteps)
	g.texture.WritePixels(pix)
	return g.texture
}
