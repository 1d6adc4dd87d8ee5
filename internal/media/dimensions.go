package media

import (
	"fmt"
	"image"
)

// Dimensions of a raster in pixels
type Dimensions struct {
	Width  int
	Height int
}

func DimensionsOf(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}
}

func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Bounds - rectangle anchored at the origin covering the whole raster
func (d Dimensions) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
