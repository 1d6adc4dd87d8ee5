package manipulator

import (
	"image"
	"math"

	"github.com/denismitr/resizefn/internal/media"
)

// Resolve picks exactly one transformation for the request.
// Precedence is crop box, then focus point, then plain dimensions;
// the first one that is present and usable wins. Resolve never fails,
// the worst case is NoTransform.
func Resolve(p *Parameters, dims media.Dimensions) Transformation {
	if p == nil || dims.Empty() {
		return NoTransform{}
	}

	if rect, ok := resolveCropRect(p.Crop, dims); ok {
		return CropRect{Rect: rect, Size: p.Size}
	}

	if len(p.Focus) == PointArity {
		center := Point{X: p.Focus[0], Y: p.Focus[1]}
		size := resolveFocusSize(p.Size, dims)

		return FocusCrop{
			Center: center,
			Size:   size,
			Window: resolveFocusWindow(center, size, dims),
		}
	}

	if p.Size.WidthOrHeightProvided() {
		return PlainResize{Size: p.Size}
	}

	return NoTransform{}
}

// resolveCropRect converts left, top, right inset, bottom inset into
// a pixel space rectangle; a box that collapses or turns inside out
// is not usable
func resolveCropRect(c Coordinates, dims media.Dimensions) (image.Rectangle, bool) {
	if len(c) != BoxArity {
		return image.Rectangle{}, false
	}

	left := clampUnit(c[0])
	top := clampUnit(c[1])
	right := clampUnit(1 - c[2])
	bottom := clampUnit(1 - c[3])

	x0 := scale(left, dims.Width)
	y0 := scale(top, dims.Height)
	x1 := scale(right, dims.Width)
	y1 := scale(bottom, dims.Height)

	// image.Rect would silently swap inverted edges
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}, false
	}

	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}, true
}

// resolveFocusSize derives missing target dimensions from the source aspect ratio
func resolveFocusSize(s Size, dims media.Dimensions) Size {
	switch {
	case s.None():
		return Size{Width: dims.Width, Height: dims.Height}
	case s.Width == 0:
		s.Width = atLeastOne(round(float64(s.Height) * float64(dims.Width) / float64(dims.Height)))
	case s.Height == 0:
		s.Height = atLeastOne(round(float64(s.Width) * float64(dims.Height) / float64(dims.Width)))
	}

	return s
}

// resolveFocusWindow finds the largest rectangle with the aspect ratio of the target
// that fits into the source, centers it on the focus point and shifts it
// back inside the bounds if needed; the window is never padded
func resolveFocusWindow(center Point, target Size, dims media.Dimensions) image.Rectangle {
	w, h := dims.Width, dims.Height
	winW, winH := w, h

	if target.Width*h > target.Height*w {
		winH = round(float64(w) * float64(target.Height) / float64(target.Width))
	} else {
		winW = round(float64(h) * float64(target.Width) / float64(target.Height))
	}

	winW = clamp(winW, 1, w)
	winH = clamp(winH, 1, h)

	x0 := clamp(round(center.X*float64(w)-float64(winW)/2), 0, w-winW)
	y0 := clamp(round(center.Y*float64(h)-float64(winH)/2), 0, h-winH)

	return image.Rect(x0, y0, x0+winW, y0+winH)
}

func scale(unit float64, pixels int) int {
	return round(unit * float64(pixels))
}

func round(v float64) int {
	return int(math.Round(v))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}

	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
