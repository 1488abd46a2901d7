// Package config holds the viewer settings resolved from flags and the
// environment.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

// EnvPrefix is prepended to every environment override, e.g. BEHOLD_ZOOM.
const EnvPrefix = "BEHOLD"

const (
	DefaultTitle       = "Behold - Image Viewer"
	DefaultWidth       = 640
	DefaultHeight      = 480
	DefaultTPS         = 60
	DefaultZoomPercent = 0.5
)

var (
	// ErrInvalidWindowSize is returned when width or height is not positive.
	ErrInvalidWindowSize = zerr.New("window size must be positive")
	// ErrInvalidTPS is returned when the tick rate is not positive.
	ErrInvalidTPS = zerr.New("ticks per second must be positive")
	// ErrInvalidZoom is returned when the initial zoom percent is outside [0,1].
	ErrInvalidZoom = zerr.New("zoom percent must be within [0,1]")
)

// Config is the resolved viewer configuration.
type Config struct {
	Title       string
	Width       int
	Height      int
	TPS         int
	ZoomPercent float64
	Verbose     bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:       DefaultTitle,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		TPS:         DefaultTPS,
		ZoomPercent: DefaultZoomPercent,
	}
}

// RegisterFlags adds the viewer flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("title", d.Title, "window title")
	fs.Int("width", d.Width, "initial window width")
	fs.Int("height", d.Height, "initial window height")
	fs.Int("tps", d.TPS, "target ticks per second")
	fs.Float64("zoom", d.ZoomPercent, "initial zoom percent in [0,1]")
	fs.BoolP("verbose", "v", d.Verbose, "enable debug logging")
}

// NewViper returns a viper bound to fs and to BEHOLD_* environment variables.
// No configuration file is read.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, zerr.Wrap(err, "failed to bind flags")
	}
	return v, nil
}

// FromViper reads a Config out of v and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Title:       v.GetString("title"),
		Width:       v.GetInt("width"),
		Height:      v.GetInt("height"),
		TPS:         v.GetInt("tps"),
		ZoomPercent: v.GetFloat64("zoom"),
		Verbose:     v.GetBool("verbose"),
	}
	return cfg, cfg.Validate()
}

// Validate checks the ranges the viewer relies on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return zerr.With(zerr.With(errors.Join(ErrInvalidWindowSize), "width", c.Width), "height", c.Height)
	}
	if c.TPS <= 0 {
		return zerr.With(errors.Join(ErrInvalidTPS), "tps", c.TPS)
	}
	if c.ZoomPercent < 0 || c.ZoomPercent > 1 {
		return zerr.With(errors.Join(ErrInvalidZoom), "zoom", c.ZoomPercent)
	}
	return nil
}
