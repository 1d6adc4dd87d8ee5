package manipulator

import (
	"bytes"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// encode writes the whole JPEG into dst only when encoding succeeded,
// so a failure never leaves partial output behind
func (it *imageTransformer) encode(img image.Image, dst io.Writer) (int, error) {
	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(it.cfg.quality())); err != nil {
		return 0, errors.Wrapf(ErrEncodingFailed, "could not encode image to jpeg %v", err)
	}

	n, err := io.Copy(dst, buf)
	if err != nil {
		return int(n), errors.Wrapf(ErrEncodingFailed, "could not copy bytes to dst; %v", err)
	}

	return int(n), nil
}
