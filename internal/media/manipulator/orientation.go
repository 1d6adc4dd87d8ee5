package manipulator

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// maximum distance into image to look for EXIF tags
const maxExifSize = 1 << 20

// Exif Orientation Tag values
// http://sylvana.net/jpegcrop/exif_orientation.html
type orientation int

const (
	unknownOrientation orientation = 0
	topLeftSide        orientation = 1
	topRightSide       orientation = 2
	bottomRightSide    orientation = 3
	bottomLeftSide     orientation = 4
	leftSideTop        orientation = 5
	rightSideTop       orientation = 6
	rightSideBottom    orientation = 7
	leftSideBottom     orientation = 8
)

// readOrientation returns unknownOrientation when the source carries
// no readable EXIF orientation tag
func readOrientation(r io.Reader) orientation {
	exf, err := exif.Decode(io.LimitReader(r, maxExifSize))
	if err != nil {
		return unknownOrientation
	}

	tag, err := exf.Get(exif.Orientation)
	if err != nil {
		return unknownOrientation
	}

	orient, err := tag.Int(0)
	if err != nil || orient < int(topLeftSide) || orient > int(leftSideBottom) {
		return unknownOrientation
	}

	return orientation(orient)
}

// normalize rotates and flips img so that its visual top left corner
// becomes the buffer origin
func (o orientation) normalize(img image.Image) image.Image {
	switch o {
	case topRightSide:
		return imaging.FlipH(img)
	case bottomRightSide:
		return imaging.Rotate180(img)
	case bottomLeftSide:
		return imaging.FlipV(img)
	case leftSideTop:
		return imaging.Transpose(img)
	case rightSideTop:
		return imaging.Rotate270(img)
	case rightSideBottom:
		return imaging.Transverse(img)
	case leftSideBottom:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func (o orientation) requiresNormalization() bool {
	return o > topLeftSide && o <= leftSideBottom
}

func formatMayCarryExif(format string) bool {
	return format == "jpeg" || format == "tiff"
}
