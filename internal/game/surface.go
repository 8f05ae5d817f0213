package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

// layerSurface is a particle.Surface backed by an offscreen image the size of
// the viewport. The image is (re)allocated lazily on the next draw after a
// resize.
type layerSurface struct {
	particle.StateStack
	img  *ebiten.Image
	w, h int
}

func newLayerSurface(vp particle.Viewport) *layerSurface {
	return &layerSurface{
		StateStack: particle.NewStateStack(),
		w:          int(vp.Width),
		h:          int(vp.Height),
	}
}

func (s *layerSurface) Resize(width, height int) {
	s.w, s.h = width, height
}

func (s *layerSurface) ensure() bool {
	if s.w <= 0 || s.h <= 0 {
		return false
	}
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == s.w && b.Dy() == s.h {
			return true
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(s.w, s.h)
	return true
}

func (s *layerSurface) Clear() {
	if s.ensure() {
		s.img.Clear()
	}
}

func (s *layerSurface) SetFill(c color.RGBA) { s.Cur.Fill = c }

func (s *layerSurface) SetAlpha(a float64) { s.Cur.Alpha = a }

func (s *layerSurface) FillCircle(x, y, r float64) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), withAlpha(s.Cur.Fill, s.Cur.Alpha), true)
}

func (s *layerSurface) FillRotatedSquare(x, y, halfExtent, deg float64) {
	if s.img == nil {
		return
	}
	fillPolygon(s.img, squareCorners(x, y, halfExtent, deg), s.Cur.Fill, s.Cur.Alpha)
}

// DrawTo composites the layer onto dst.
func (s *layerSurface) DrawTo(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	dst.DrawImage(s.img, nil)
}

func (s *layerSurface) release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}
