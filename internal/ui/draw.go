package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	bannerSize  = 18.0
	overlaySize = 16.0

	// basicfont.Face7x13 line height in pixels.
	baseLineHeight = 13.0
)

var face = text.NewGoXFace(basicfont.Face7x13)

// measureText returns the size of s when drawn at the given pixel size.
func measureText(s string, size float64) (w, h float64) {
	w, h = text.Measure(s, face, baseLineHeight)
	scale := size / baseLineHeight
	return w * scale, h * scale
}

func drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	scale := size / baseLineHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = baseLineHeight
	text.Draw(dst, s, face, op)
}

// drawBanner draws s centered on dst.
func drawBanner(dst *ebiten.Image, s string, size float64, clr color.Color) {
	w, h := measureText(s, size)
	b := dst.Bounds()
	x := float64(b.Dx())*0.5 - w*0.5
	y := float64(b.Dy())*0.5 - h*0.5
	drawText(dst, s, x, y, size, clr)
}
