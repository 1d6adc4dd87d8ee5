package media

import "github.com/pkg/errors"

var ErrInvalidExtension = errors.New("invalid extension")

type Extension string

const (
	JPEG Extension = "jpg"
	PNG  Extension = "png"
	GIF  Extension = "gif"
	BMP  Extension = "bmp"
	TIFF Extension = "tiff"
	WEBP Extension = "webp"
)

// extensions maps both file extensions and decoder format names
// (as reported by image.Decode) to a canonical Extension
var extensions = map[string]Extension{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"bmp":  BMP,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
}

var mimes = map[Extension]string{
	PNG:  "image/png",
	JPEG: "image/jpeg",
	GIF:  "image/gif",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	WEBP: "image/webp",
}

func GuessMimeFromExtension(ext Extension) (string, error) {
	if m, ok := mimes[ext]; ok {
		return m, nil
	}

	return "", errors.Wrapf(ErrInvalidExtension, "mime type unsupported for %s", ext)
}

func NormalizeExtension(ext string) (Extension, error) {
	if e, ok := extensions[ext]; ok {
		return e, nil
	}

	return "", errors.Wrapf(ErrInvalidExtension, "extension unsupported: %s", ext)
}
