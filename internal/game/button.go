package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// button is a pill-shaped clickable with hover and press states.
type button struct {
	label      string
	x, y, w, h float64

	normal, hover, press color.RGBA

	hovered bool
	pressed bool
}

func (b *button) place(x, y, w, h float64) {
	b.x, b.y, b.w, b.h = x, y, w, h
}

func (b *button) contains(x, y float64) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update feeds one tick of input. entered is true on the tick the pointer
// moves onto the button; clicked is true when a press that started on the
// button is released on it.
func (b *button) update(in input) (entered, clicked bool) {
	was := b.hovered
	b.hovered = b.contains(in.x, in.y)
	entered = b.hovered && !was

	if b.hovered && in.pressed {
		b.pressed = true
	}
	if in.released {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return entered, clicked
}

// reset forgets hover and press state, so the next hover counts as an enter.
func (b *button) reset() {
	b.hovered, b.pressed = false, false
}

func (b *button) rect() image.Rectangle {
	return image.Rect(int(b.x), int(b.y), int(b.x+b.w)+1, int(b.y+b.h)+1)
}

func (b *button) color() color.RGBA {
	switch {
	case b.pressed:
		return b.press
	case b.hovered:
		return b.hover
	default:
		return b.normal
	}
}

// draw renders the button grown by scale around its centre.
func (b *button) draw(dst *ebiten.Image, text *textCache, scale float64) {
	w, h := b.w*scale, b.h*scale
	x, y := b.x+(b.w-w)/2, b.y+(b.h-h)/2

	if b.hovered {
		glow := withAlpha(b.normal, 0.25)
		drawPill(dst, x-6, y-4, w+12, h+12, glow)
	}
	drawPill(dst, x, y, w, h, b.color())

	textScale := 2.0
	text.drawCentered(dst, b.label, x+w/2, y+(h-glyphH*textScale)/2, textScale, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)
}
