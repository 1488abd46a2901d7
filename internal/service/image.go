// Package service provides image decoding and metadata extraction services.
package service

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/behold/internal/session"
	"github.com/rwcarlsen/goexif/exif"
	"go.trai.ch/zerr"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrEmptyImage is returned for images without any pixels.
var ErrEmptyImage = zerr.New("image has no pixels")

// ImageInfo holds metadata about an image.
type ImageInfo struct {
	Width    int
	Height   int
	Format   string
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// CameraModel returns the EXIF camera model, or "" when unknown.
func (i *ImageInfo) CameraModel() string {
	if i == nil {
		return ""
	}
	return i.EXIFData["Camera Model"]
}

// ImageService loads image files into textures and reads their metadata.
type ImageService struct{}

var _ session.Decoder = (*ImageService)(nil)

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// DecodeFile decodes path with any registered image format.
func (is *ImageService) DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return nil, zerr.With(errors.Join(ErrEmptyImage), "path", path)
	}
	return img, nil
}

// Decode decodes path and uploads it as an ebiten texture.
func (is *ImageService) Decode(path string) (session.Texture, error) {
	img, err := is.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Info reads an image file and extracts metadata without decoding the full
// image.
func (is *ImageService) Info(path string) (*ImageInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image config: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("seeking file for exif: %w", err)
	}

	exifData, _ := exif.Decode(file) // Ignore error, EXIF might not be present

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("getting file stats: %w", err)
	}

	info := &ImageInfo{
		Width:    config.Width,
		Height:   config.Height,
		Format:   format,
		Size:     fileInfo.Size(),
		ModTime:  fileInfo.ModTime(),
		EXIFData: make(map[string]string),
	}

	if exifData != nil {
		if camModel, err := exifData.Get(exif.Model); err == nil {
			if s, err := camModel.StringVal(); err == nil {
				info.EXIFData["Camera Model"] = s
			}
		}
		if fNum, err := exifData.Get(exif.FNumber); err == nil {
			numer, denom, _ := fNum.Rat2(0)
			if denom != 0 {
				info.EXIFData["F-Number"] = fmt.Sprintf("f/%.1f", float64(numer)/float64(denom))
			}
		}
		if expTime, err := exifData.Get(exif.ExposureTime); err == nil {
			numer, denom, _ := expTime.Rat2(0)
			info.EXIFData["Exposure Time"] = fmt.Sprintf("%d/%d s", numer, denom)
		}
	}

	return info, nil
}
