package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type InputState struct {
	Quit             bool
	ToggleFullscreen bool
	NextImage        bool
	PrevImage        bool

	// Mouse state
	WheelY float64
}

// InputSource produces one InputState per frame.
type InputSource interface {
	Poll() InputState
}

// EbitenInput polls the keyboard and mouse through ebiten.
type EbitenInput struct{}

func (EbitenInput) Poll() InputState {
	_, wheelY := ebiten.Wheel()
	return InputState{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		NextImage: inpututil.IsKeyJustPressed(ebiten.KeyRight) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		PrevImage: inpututil.IsKeyJustPressed(ebiten.KeyLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		WheelY: wheelY,
	}
}

// Window is the part of the host window the viewer changes at runtime.
type Window interface {
	SetTitle(title string)
	SetFullscreen(fullscreen bool)
	IsFullscreen() bool
}

// EbitenWindow drives the ebiten window.
type EbitenWindow struct{}

func (EbitenWindow) SetTitle(title string)         { ebiten.SetWindowTitle(title) }
func (EbitenWindow) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }
func (EbitenWindow) IsFullscreen() bool            { return ebiten.IsFullscreen() }
