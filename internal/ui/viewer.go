package ui

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/behold/internal/service"
	"github.com/nicky-ayoub/behold/internal/session"
	"pkt.systems/pslog"
)

// BannerText is shown while nothing is loaded.
const BannerText = "No image opened...\nDrag-in an image to view it!"

const noPath = "none"

// Images is the read-only view of the session the viewer needs.
type Images interface {
	HasImages() bool
	Len() int
	At(i int) (session.LoadedImage, bool)
}

// InfoSource looks up metadata for the overlay.
type InfoSource interface {
	Info(path string) (*service.ImageInfo, error)
}

// Viewer is the ebiten.Game that shows the session one image at a time.
type Viewer struct {
	ctx    context.Context
	title  string
	images Images
	info   InfoSource
	input  InputSource
	window Window
	log    pslog.Logger

	state  *ViewerState
	camera Camera

	width, height int
	currentPath   string
	currentInfo   *service.ImageInfo

	// undrawable holds paths whose texture is not an ebiten image, so the
	// warning is logged once per image.
	undrawable map[string]bool
}

// Options configures a Viewer. Input and Window default to the ebiten ones.
type Options struct {
	Title         string
	Width, Height int
	ZoomPercent   float64
	Input         InputSource
	Window        Window
	Info          InfoSource
}

// NewViewer creates a viewer over images. The context ends the run loop when
// cancelled.
func NewViewer(ctx context.Context, images Images, opts Options) *Viewer {
	if opts.Input == nil {
		opts.Input = EbitenInput{}
	}
	if opts.Window == nil {
		opts.Window = EbitenWindow{}
	}
	v := &Viewer{
		ctx:         ctx,
		title:       opts.Title,
		images:      images,
		info:        opts.Info,
		input:       opts.Input,
		window:      opts.Window,
		log:         pslog.Ctx(ctx),
		state:       NewViewerState(opts.ZoomPercent),
		width:       opts.Width,
		height:      opts.Height,
		currentPath: noPath,
	}
	v.reposition()
	return v
}

// State exposes the navigation state.
func (v *Viewer) State() *ViewerState {
	return v.state
}

// Camera returns the current camera.
func (v *Viewer) Camera() Camera {
	return v.camera
}

// CurrentPath returns the path of the displayed image, or "none".
func (v *Viewer) CurrentPath() string {
	return v.currentPath
}

// ShowsBanner reports whether the next frame draws the empty-session banner.
func (v *Viewer) ShowsBanner() bool {
	return !v.images.HasImages()
}

func (v *Viewer) reposition() {
	v.camera = Reposition(v.width, v.height, v.state.ZoomPercent)
}

func (v *Viewer) Update() error {
	select {
	case <-v.ctx.Done():
		v.log.Info("shutting down", "reason", v.ctx.Err())
		return ebiten.Termination
	default:
	}

	input := v.input.Poll()
	if input.Quit {
		return ebiten.Termination
	}
	if input.ToggleFullscreen {
		v.window.SetFullscreen(!v.window.IsFullscreen())
	}
	v.step(input)
	return nil
}

// step applies one frame of input. Nothing happens on an empty session.
func (v *Viewer) step(input InputState) {
	count := v.images.Len()
	if count == 0 {
		return
	}

	if v.state.ApplyWheel(input.WheelY) {
		v.reposition()
	}

	delta := 0
	if input.NextImage {
		delta++
	}
	if input.PrevImage {
		delta--
	}
	v.state.Navigate(delta, count)

	img, ok := v.images.At(v.state.Index())
	if !ok {
		return
	}
	v.currentPath = img.Path

	if v.state.TakeChanged() {
		v.window.SetTitle(fmt.Sprintf("%s - %s", v.title, img.Path))
		v.currentInfo = v.lookupInfo(img.Path)
	}
}

func (v *Viewer) lookupInfo(path string) *service.ImageInfo {
	if v.info == nil {
		return nil
	}
	info, err := v.info.Info(path)
	if err != nil {
		v.log.Debug("no metadata for image", "path", path, "err", err)
		return nil
	}
	return info
}

// OverlayText is the debug text drawn in the top-left corner.
func (v *Viewer) OverlayText() string {
	s := fmt.Sprintf("Scroll %f\nImage %d of %d\n%s",
		v.camera.Zoom, v.state.Index()+1, v.images.Len(), v.currentPath)
	if v.currentInfo != nil {
		s += fmt.Sprintf("\n%dx%d %s", v.currentInfo.Width, v.currentInfo.Height, v.currentInfo.Format)
		if model := v.currentInfo.CameraModel(); model != "" {
			s += " " + model
		}
	}
	return s
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if v.images.HasImages() {
		if img, ok := v.images.At(v.state.Index()); ok {
			if tex, ok := v.drawable(img); ok {
				op := &ebiten.DrawImageOptions{}
				op.GeoM = v.camera.ImageGeoM(tex.Bounds().Dx(), tex.Bounds().Dy())
				op.Filter = ebiten.FilterLinear
				screen.DrawImage(tex, op)
			}
		}
	} else {
		drawBanner(screen, BannerText, bannerSize, color.White)
	}

	drawText(screen, v.OverlayText(), 0, 0, overlaySize, color.RGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff})
}

// drawable returns the ebiten texture behind img. Anything else cannot be
// drawn and is reported once.
func (v *Viewer) drawable(img session.LoadedImage) (*ebiten.Image, bool) {
	if tex, ok := img.Texture.(*ebiten.Image); ok && tex != nil {
		return tex, true
	}
	if !v.undrawable[img.Path] {
		if v.undrawable == nil {
			v.undrawable = map[string]bool{}
		}
		v.undrawable[img.Path] = true
		v.log.Warn("texture cannot be drawn", "path", img.Path, "type", fmt.Sprintf("%T", img.Texture))
	}
	return nil, false
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// A 1:1 pixel mapping keeps the camera math in window pixels.
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.reposition()
	}
	return outsideWidth, outsideHeight
}
