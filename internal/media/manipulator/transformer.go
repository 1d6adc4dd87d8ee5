package manipulator

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type imageTransformer struct {
	cfg *Config
}

func newImageTransformer(cfg *Config) *imageTransformer {
	return &imageTransformer{
		cfg: cfg,
	}
}

type decodedImage struct {
	img         image.Image
	format      string
	orientation orientation
}

// decode reads the raster and normalizes its orientation, so that all further
// geometry is expressed in the visual (post orientation) space
func (it *imageTransformer) decode(source []byte) (*decodedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(source))
	if err != nil {
		return nil, errors.Wrap(ErrBadImage, err.Error())
	}

	d := &decodedImage{img: img, format: format, orientation: unknownOrientation}

	if formatMayCarryExif(format) {
		d.orientation = readOrientation(bytes.NewReader(source))
		if d.orientation.requiresNormalization() {
			d.img = d.orientation.normalize(img)
		}
	}

	return d, nil
}

func (it *imageTransformer) apply(img image.Image, t Transformation) image.Image {
	switch tr := t.(type) {
	case CropRect:
		return it.cropRect(img, tr)
	case FocusCrop:
		return it.focusCrop(img, tr)
	case PlainResize:
		return imaging.Resize(img, tr.Size.Width, tr.Size.Height, it.cfg.filter())
	case NoTransform:
		return img
	default:
		panic(fmt.Sprintf("unsupported transformation %T", t))
	}
}

func (it *imageTransformer) cropRect(img image.Image, c CropRect) image.Image {
	cropped := imaging.Crop(img, c.Rect.Add(img.Bounds().Min))

	if c.Size.None() {
		return cropped
	}

	if c.Size.Width == 0 || c.Size.Height == 0 {
		// missing dimension is derived from the aspect ratio of the rectangle
		return imaging.Resize(cropped, c.Size.Width, c.Size.Height, it.cfg.filter())
	}

	w, h := fitWithin(cropped.Bounds().Dx(), cropped.Bounds().Dy(), c.Size)

	return imaging.Resize(cropped, w, h, it.cfg.filter())
}

func (it *imageTransformer) focusCrop(img image.Image, f FocusCrop) image.Image {
	window := imaging.Crop(img, f.Window.Add(img.Bounds().Min))

	if window.Bounds().Dx() == f.Size.Width && window.Bounds().Dy() == f.Size.Height {
		return window
	}

	return imaging.Resize(window, f.Size.Width, f.Size.Height, it.cfg.filter())
}

// fitWithin scales w x h so that it fits inside the bounds while
// exactly matching at least one of them
func fitWithin(w, h int, bounds Size) (int, int) {
	if bounds.Width*h <= bounds.Height*w {
		return bounds.Width, clamp(round(float64(bounds.Width)*float64(h)/float64(w)), 1, bounds.Height)
	}

	return clamp(round(float64(bounds.Height)*float64(w)/float64(h)), 1, bounds.Width), bounds.Height
}

func sourceExtension(format string) media.Extension {
	ext, err := media.NormalizeExtension(format)
	if err != nil {
		return media.Extension(format)
	}

	return ext
}
