package manipulator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Recognized query keys
const (
	WidthKey  = "width"
	HeightKey = "height"
	CropKey   = "cc"
	FocusKey  = "rxy"
)

// Parameters of a single resize request
type Parameters struct {
	Size Size

	// Crop box as left, top, right inset, bottom inset; nil when absent
	Crop Coordinates

	// Focus point as x, y; nil when absent
	Focus Coordinates
}

type paramConverter struct {
	cfg *Config
}

func newParamConverter(cfg *Config) *paramConverter {
	return &paramConverter{cfg: cfg}
}

// convert never fails: every malformed value is replaced with a safe default
// and reported in the returned ValidationError
func (pc *paramConverter) convert(query url.Values) (*Parameters, *ValidationError) {
	p := new(Parameters)
	report := NewValidationError()

	p.Size.Width = pc.dimension(query, WidthKey, report)
	p.Size.Height = pc.dimension(query, HeightKey, report)
	p.Crop = pc.coordinates(query, CropKey, BoxArity, report)
	p.Focus = pc.coordinates(query, FocusKey, PointArity, report)

	return p, report
}

func (pc *paramConverter) dimension(query url.Values, key string, report *ValidationError) int {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		report.Add(key, (&ParseError{Key: key, Value: raw, Reason: "not a non-negative integer"}).Error())
		return 0
	}

	if max := pc.cfg.maxDimension(); v > max {
		report.Add(key, fmt.Sprintf("%s=%d exceeds %d and was capped", key, v, max))
		return max
	}

	return v
}

func (pc *paramConverter) coordinates(query url.Values, key string, arity int, report *ValidationError) Coordinates {
	if _, ok := query[key]; !ok {
		return nil
	}

	coordinates, err := ParseCoordinates(query.Get(key), arity)
	if err != nil {
		if pErr, ok := err.(*ParseError); ok {
			pErr.Key = key
		}

		report.Add(key, err.Error())
		return nil
	}

	return coordinates
}
