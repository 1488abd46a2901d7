// Package session keeps the ordered list of images loaded for one run of the
// viewer.
package session

import (
	"errors"
	"image"
	"path/filepath"

	"github.com/nicky-ayoub/behold/internal/scan"
	"go.trai.ch/zerr"
	"pkt.systems/pslog"
)

// NotLoaded is the index returned alongside every load failure.
const NotLoaded = -1

var (
	// ErrRejectedExtension is returned for files whose extension is refused outright.
	ErrRejectedExtension = zerr.New("rejected file extension")
	// ErrDecodeFailed is returned when a file cannot be turned into a texture.
	ErrDecodeFailed = zerr.New("failed to decode image")
	// ErrNotFileOrDir is returned for paths that are neither a regular file nor a directory.
	ErrNotFileOrDir = zerr.New("path is neither a file nor a directory")
	// ErrNoImages is returned when a directory yielded no loadable image.
	ErrNoImages = zerr.New("no images loaded from directory")
)

// IsNotLoaded reports whether err is one of the load failures above.
func IsNotLoaded(err error) bool {
	return errors.Is(err, ErrRejectedExtension) ||
		errors.Is(err, ErrDecodeFailed) ||
		errors.Is(err, ErrNotFileOrDir) ||
		errors.Is(err, ErrNoImages)
}

// Texture is a decoded image resident on the GPU.
type Texture interface {
	Bounds() image.Rectangle
	Deallocate()
}

// Decoder turns a file path into a texture.
//
//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks
type Decoder interface {
	Decode(path string) (Texture, error)
}

// LoadedImage is one entry of the session. It is never mutated after load.
type LoadedImage struct {
	Path    string
	Texture Texture
}

// Session owns the loaded images and their textures.
type Session struct {
	images  []LoadedImage
	decoder Decoder
	filter  *scan.Filter
	log     pslog.Logger
	closed  bool
}

// New creates an empty session. A nil filter disables extension rejection.
func New(decoder Decoder, filter *scan.Filter, log pslog.Logger) *Session {
	return &Session{
		decoder: decoder,
		filter:  filter,
		log:     log,
	}
}

// Load adds the image at path, or every image below path if it is a
// directory, and returns the index of the (last) loaded image. Loading a path
// that is already present returns its existing index without decoding again.
//
// For directories the returned index is only the last successful entry and
// should not be relied on.
func (s *Session) Load(path string) (int, error) {
	return s.load(path, map[string]bool{})
}

func (s *Session) load(path string, visited map[string]bool) (int, error) {
	if i := s.indexOf(path); i != NotLoaded {
		s.log.Info("image already loaded", "path", path, "index", i)
		return i, nil
	}

	switch scan.Classify(path) {
	case scan.KindFile:
		return s.loadFile(path)
	case scan.KindDir:
		return s.loadDir(path, visited)
	default:
		s.log.Warn("skipping path", "path", path, "err", ErrNotFileOrDir)
		return NotLoaded, zerr.With(errors.Join(ErrNotFileOrDir), "path", path)
	}
}

func (s *Session) loadFile(path string) (int, error) {
	if s.filter.Rejects(path) {
		s.log.Warn("refusing to load file", "path", path, "ext", filepath.Ext(path))
		return NotLoaded, zerr.With(errors.Join(ErrRejectedExtension), "path", path)
	}

	tex, err := s.decoder.Decode(path)
	if err != nil {
		s.log.Warn("could not decode image", "path", path, "err", err)
		return NotLoaded, zerr.With(errors.Join(ErrDecodeFailed, err), "path", path)
	}
	if tex == nil || tex.Bounds().Dx() <= 0 {
		if tex != nil {
			tex.Deallocate()
		}
		s.log.Warn("decoded image is empty", "path", path)
		return NotLoaded, zerr.With(errors.Join(ErrDecodeFailed), "path", path)
	}

	s.images = append(s.images, LoadedImage{Path: path, Texture: tex})
	index := len(s.images) - 1
	s.log.Debug("image loaded", "path", path, "index", index,
		"width", tex.Bounds().Dx(), "height", tex.Bounds().Dy())
	return index, nil
}

func (s *Session) loadDir(dir string, visited map[string]bool) (int, error) {
	key := dir
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		key = real
	}
	if visited[key] {
		s.log.Debug("directory already visited", "path", dir)
		return NotLoaded, zerr.With(errors.Join(ErrNoImages), "path", dir)
	}
	visited[key] = true

	entries, err := scan.List(dir)
	if err != nil {
		s.log.Warn("could not list directory", "path", dir, "err", err)
		return NotLoaded, zerr.With(errors.Join(ErrNotFileOrDir, err), "path", dir)
	}

	last := NotLoaded
	for _, entry := range entries {
		if i, err := s.load(entry, visited); err == nil {
			last = i
		}
	}
	if last == NotLoaded {
		return NotLoaded, zerr.With(errors.Join(ErrNoImages), "path", dir)
	}
	return last, nil
}

func (s *Session) indexOf(path string) int {
	for i, img := range s.images {
		if img.Path == path {
			return i
		}
	}
	return NotLoaded
}

// HasImages reports whether at least one image is loaded.
func (s *Session) HasImages() bool {
	return len(s.images) > 0
}

// Len returns the number of loaded images.
func (s *Session) Len() int {
	return len(s.images)
}

// At returns the image at index i.
func (s *Session) At(i int) (LoadedImage, bool) {
	if i < 0 || i >= len(s.images) {
		return LoadedImage{}, false
	}
	return s.images[i], true
}

// Paths returns the loaded paths in display order.
func (s *Session) Paths() []string {
	paths := make([]string, len(s.images))
	for i, img := range s.images {
		paths[i] = img.Path
	}
	return paths
}

// Close releases every texture. Later calls do nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, img := range s.images {
		img.Texture.Deallocate()
	}
	s.log.Debug("session closed", "released", len(s.images))
}
