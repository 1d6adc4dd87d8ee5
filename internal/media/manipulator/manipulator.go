package manipulator

import (
	"io"
	"io/ioutil"
	"net/url"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/pkg/errors"
)

type Manipulator struct {
	cfg              *Config
	imageTransformer *imageTransformer
	paramConverter   *paramConverter
}

func New(cfg *Config) *Manipulator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Manipulator{
		cfg:              cfg,
		imageTransformer: newImageTransformer(cfg),
		paramConverter:   newParamConverter(cfg),
	}
}

// ConvertParameters - converts query parameters into resize parameters.
// The returned report lists every parameter that was malformed and
// replaced with a safe default, it is never nil.
func (m *Manipulator) ConvertParameters(query url.Values) (*Parameters, *ValidationError) {
	return m.paramConverter.convert(query)
}

// Process runs the whole pipeline: decode, orientation normalization,
// region resolution, transformation and JPEG encoding into dst.
// Either the complete JPEG is written to dst or nothing is.
func (m *Manipulator) Process(source io.Reader, dst io.Writer, p *Parameters) (*Result, error) {
	b, err := ioutil.ReadAll(source)
	if err != nil {
		return nil, errors.Wrapf(ErrBadImage, "could not read source: %v", err)
	}

	decoded, err := m.imageTransformer.decode(b)
	if err != nil {
		return nil, err
	}

	sourceDims := media.DimensionsOf(decoded.img)
	t := Resolve(p, sourceDims)

	transformed := m.imageTransformer.apply(decoded.img, t)

	n, err := m.imageTransformer.encode(transformed, dst)
	if err != nil {
		return nil, err
	}

	return &Result{
		Transformation:  t,
		Source:          sourceDims,
		SourceExtension: sourceExtension(decoded.format),
		Reoriented:      decoded.orientation.requiresNormalization(),
		Dimensions:      media.DimensionsOf(transformed),
		Extension:       media.JPEG,
		Quality:         m.cfg.quality(),
		Size:            n,
	}, nil
}

type Result struct {
	Transformation Transformation

	// Source dimensions after orientation normalization
	Source          media.Dimensions
	SourceExtension media.Extension
	Reoriented      bool

	Dimensions media.Dimensions
	Extension  media.Extension
	Quality    int
	Size       int
}

func (r *Result) Mime() string {
	mime, err := media.GuessMimeFromExtension(r.Extension)
	if err != nil {
		return "application/octet-stream"
	}

	return mime
}
