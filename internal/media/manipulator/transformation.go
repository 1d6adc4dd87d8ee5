package manipulator

import (
	"fmt"
	"image"
	"strings"

	"github.com/denismitr/resizefn/internal/media"
)

type Mode string

const (
	ModeCrop   Mode = "crop"
	ModeFocus  Mode = "focus"
	ModeResize Mode = "resize"
	ModeNone   Mode = "none"
)

// Size is the requested output size, zero means "derive"
type Size struct {
	Width  int
	Height int
}

func (s Size) None() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) WidthOrHeightProvided() bool {
	return s.Width != 0 || s.Height != 0
}

func (s Size) segments() []string {
	var segments []string
	if s.Width != 0 {
		segments = append(segments, fmt.Sprintf("w%d", s.Width))
	}

	if s.Height != 0 {
		segments = append(segments, fmt.Sprintf("h%d", s.Height))
	}

	return segments
}

// Point in unit space
type Point struct {
	X float64
	Y float64
}

// Transformation is one of CropRect, FocusCrop, PlainResize or NoTransform
type Transformation interface {
	Mode() Mode
	Filename() string

	transformation()
}

// CropRect samples the source from Rect and fits the result within Size
// preserving the aspect ratio of Rect
type CropRect struct {
	Rect image.Rectangle
	Size Size
}

// FocusCrop fills Size exactly with the Window of the source centered
// as close to Center as the image bounds allow
type FocusCrop struct {
	Center Point
	Window image.Rectangle
	Size   Size
}

// PlainResize resizes to Size, a zero dimension keeps the source aspect ratio
type PlainResize struct {
	Size Size
}

// NoTransform leaves the orientation corrected source as is
type NoTransform struct{}

func (CropRect) Mode() Mode    { return ModeCrop }
func (FocusCrop) Mode() Mode   { return ModeFocus }
func (PlainResize) Mode() Mode { return ModeResize }
func (NoTransform) Mode() Mode { return ModeNone }

func (CropRect) transformation()    {}
func (FocusCrop) transformation()   {}
func (PlainResize) transformation() {}
func (NoTransform) transformation() {}

func (c CropRect) Filename() string {
	segments := []string{
		fmt.Sprintf("cl%d", c.Rect.Min.X),
		fmt.Sprintf("ct%d", c.Rect.Min.Y),
		fmt.Sprintf("cr%d", c.Rect.Max.X),
		fmt.Sprintf("cb%d", c.Rect.Max.Y),
	}

	return filename(append(segments, c.Size.segments()...))
}

func (f FocusCrop) Filename() string {
	segments := []string{
		fmt.Sprintf("fx%.2f", f.Center.X),
		fmt.Sprintf("fy%.2f", f.Center.Y),
	}

	return filename(append(segments, f.Size.segments()...))
}

func (r PlainResize) Filename() string {
	return filename(r.Size.segments())
}

func (NoTransform) Filename() string {
	return filename([]string{"original"})
}

func filename(segments []string) string {
	return strings.ToLower(strings.Join(segments, "_") + "." + string(media.JPEG))
}
