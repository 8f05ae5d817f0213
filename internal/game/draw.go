package game

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// fillPolygon fills the convex polygon pts.
func fillPolygon(dst *ebiten.Image, pts []particle.Point, c color.RGBA, alpha float64) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	a := float32(float64(c.A) / 0xff * clamp01(alpha))
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	dst.DrawTriangles(vs, is, white(), op)
}

// squareCorners returns the corners of a square centred on (x, y) rotated by deg.
func squareCorners(x, y, half, deg float64) []particle.Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	out := make([]particle.Point, 0, 4)
	for _, c := range corners {
		out = append(out, particle.Point{
			X: x + c[0]*cos - c[1]*sin,
			Y: y + c[0]*sin + c[1]*cos,
		})
	}
	return out
}

// drawPill draws a rounded bar with fully round ends.
func drawPill(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	r := h / 2
	vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-h), float32(h), clr, true)
	vector.DrawFilledCircle(dst, float32(x+r), float32(y+r), float32(r), clr, true)
	vector.DrawFilledCircle(dst, float32(x+w-r), float32(y+r), float32(r), clr, true)
}

// drawHeart draws a heart of width ~2*size centred on (x, y).
func drawHeart(dst *ebiten.Image, x, y, size float64, c color.RGBA, alpha float64) {
	clr := withAlpha(c, alpha)
	r := size / 2
	vector.DrawFilledCircle(dst, float32(x-r), float32(y-r/2), float32(r), clr, true)
	vector.DrawFilledCircle(dst, float32(x+r), float32(y-r/2), float32(r), clr, true)
	fillPolygon(dst, []particle.Point{
		{X: x - 2*r + 0.5, Y: y - r/4},
		{X: x + 2*r - 0.5, Y: y - r/4},
		{X: x, Y: y + 1.6*size},
	}, c, alpha)
}

// Debug font glyph size.
const (
	glyphW = 6
	glyphH = 16
)

// textCache renders strings once with the debug font so they can be scaled.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: map[string]*ebiten.Image{}}
}

func textWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))*glyphW) * scale
}

func (t *textCache) image(s string) *ebiten.Image {
	if img, ok := t.images[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(1, len([]rune(s))*glyphW), glyphH)
	ebitenutil.DebugPrint(img, s)
	t.images[s] = img
	return img
}

// draw renders s with its top-left corner at (x, y).
func (t *textCache) draw(dst *ebiten.Image, s string, x, y, scale float64, c color.RGBA, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(t.image(s), op)
}

// drawCentered renders s horizontally centred on cx.
func (t *textCache) drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, c color.RGBA, alpha float64) {
	t.draw(dst, s, cx-textWidth(s, scale)/2, y, scale, c, alpha)
}

// drawWave renders s letter by letter, each letter bobbing behind the previous one.
func (t *textCache) drawWave(dst *ebiten.Image, s string, cx, y, scale, now float64, c color.RGBA) {
	x := cx - textWidth(s, scale)/2
	for i, r := range []rune(s) {
		dy := math.Sin(now*math.Pi-float64(i)*0.5) * 6 * scale / 3
		t.draw(dst, string(r), x, y+dy, scale, c, 1)
		x += glyphW * scale
	}
}

// drawBackground fills the screen with a slowly breathing cream gradient.
func drawBackground(dst *ebiten.Image, vp particle.Viewport, now float64) {
	top := color.RGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff}
	mid := color.RGBA{R: 0xfa, G: 0xf7, B: 0xf0, A: 0xff}
	bottom := color.RGBA{R: 0xf0, G: 0xeb, B: 0xe0, A: 0xff}
	const band = 4
	for y := 0.0; y < vp.Height; y += band {
		ratio := y / vp.Height
		shift := 0.05 * math.Sin(now*0.5+ratio*math.Pi)
		var c color.RGBA
		if ratio < 0.5 {
			c = lerpColor(top, mid, ratio*2+shift)
		} else {
			c = lerpColor(mid, bottom, (ratio-0.5)*2+shift)
		}
		vector.DrawFilledRect(dst, 0, float32(y), float32(vp.Width), band, c, false)
	}
}
