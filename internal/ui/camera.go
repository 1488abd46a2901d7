package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	MinZoom = 0.1
	MaxZoom = 10.0

	// ZoomStep is how far one wheel notch moves the zoom percent.
	ZoomStep = 0.05
)

// Camera is a 2D view transform: world points are moved so Target lands on
// Offset in screen space, scaled by Zoom around it.
type Camera struct {
	OffsetX, OffsetY float64
	TargetX, TargetY float64
	Zoom             float64
}

// ZoomFor maps a normalized zoom percent onto [MinZoom, MaxZoom]
// exponentially, so equal wheel steps feel equal at every zoom level.
func ZoomFor(percent float64) float64 {
	percent = clamp(percent, 0, 1)
	lo, hi := math.Log(MinZoom), math.Log(MaxZoom)
	return math.Exp(lo + (hi-lo)*percent)
}

// Reposition centers the camera on a width x height screen.
func Reposition(width, height int, percent float64) Camera {
	return Camera{
		OffsetX: float64(width) * 0.5,
		OffsetY: float64(height) * 0.5,
		Zoom:    ZoomFor(percent),
	}
}

// ImageGeoM returns the transform that draws a texW x texH texture centered
// on the camera target.
func (c Camera) ImageGeoM(texW, texH int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(texW)*0.5-c.TargetX, -float64(texH)*0.5-c.TargetY)
	m.Scale(c.Zoom, c.Zoom)
	m.Translate(c.OffsetX, c.OffsetY)
	return m
}

// clamp restricts a value to a given range.
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
