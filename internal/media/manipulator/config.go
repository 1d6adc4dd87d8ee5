package manipulator

import (
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

var ErrUnknownFilter = errors.New("unknown resample filter")

const (
	// DefaultQuality matches the customary quality of JPEG codecs
	DefaultQuality      = 75
	DefaultMaxDimension = 10000
	DefaultFilter       = "lanczos"
)

var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"hermite":    imaging.Hermite,
	"mitchell":   imaging.MitchellNetravali,
	"catmullrom": imaging.CatmullRom,
	"bspline":    imaging.BSpline,
	"gaussian":   imaging.Gaussian,
	"lanczos":    imaging.Lanczos,
	"hann":       imaging.Hann,
	"hamming":    imaging.Hamming,
	"blackman":   imaging.Blackman,
	"bartlett":   imaging.Bartlett,
	"welch":      imaging.Welch,
	"cosine":     imaging.Cosine,
}

type Config struct {
	// JPEG output quality 1..100
	Quality int

	// Requested width and height are capped by MaxDimension
	MaxDimension int

	// Name of the resample filter, see filters
	Filter string
}

func DefaultConfig() *Config {
	return &Config{
		Quality:      DefaultQuality,
		MaxDimension: DefaultMaxDimension,
		Filter:       DefaultFilter,
	}
}

func (c *Config) Validate() error {
	vErr := NewValidationError()

	if c.Quality < 0 || c.Quality > 100 {
		vErr.Add("quality", "quality must be in range 1..100")
	}

	if c.MaxDimension < 0 {
		vErr.Add("maxDimension", "max dimension cannot be negative")
	}

	if c.Filter != "" {
		if _, ok := filters[c.Filter]; !ok {
			vErr.Add("filter", errors.Wrapf(ErrUnknownFilter, "%s", c.Filter).Error())
		}
	}

	if !vErr.Empty() {
		return vErr
	}

	return nil
}

func (c *Config) quality() int {
	if c.Quality == 0 {
		return DefaultQuality
	}

	return c.Quality
}

func (c *Config) maxDimension() int {
	if c.MaxDimension == 0 {
		return DefaultMaxDimension
	}

	return c.MaxDimension
}

func (c *Config) filter() imaging.ResampleFilter {
	if f, ok := filters[c.Filter]; ok {
		return f
	}

	return imaging.Lanczos
}
