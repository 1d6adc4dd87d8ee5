package manipulator

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// stripes paints the image in vertical bands split at the given x coordinates
func stripes(w, h int, splits []int, colors ...color.NRGBA) *image.NRGBA {
	img := imaging.New(w, h, colors[0])
	for x := 0; x < w; x++ {
		band := 0
		for band < len(splits) && x >= splits[band] {
			band++
		}

		for y := 0; y < h; y++ {
			img.SetNRGBA(x, y, colors[band])
		}
	}

	return img
}

func assertColorNear(t *testing.T, expected color.NRGBA, actual color.Color) {
	t.Helper()

	c := color.NRGBAModel.Convert(actual).(color.NRGBA)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d > -40 && d < 40
	}

	assert.True(
		t,
		near(expected.R, c.R) && near(expected.G, c.G) && near(expected.B, c.B),
		"expected color near %v, got %v", expected, c,
	)
}

func TestImageTransformer_CropRect(t *testing.T) {
	it := newImageTransformer(DefaultConfig())
	src := imaging.New(1000, 1000, green)

	tt := []struct {
		rect     image.Rectangle
		size     Size
		expected image.Point
	}{
		{rect: image.Rect(100, 100, 900, 900), size: Size{Width: 200, Height: 200}, expected: image.Pt(200, 200)},
		{rect: image.Rect(0, 0, 800, 400), size: Size{Width: 200, Height: 200}, expected: image.Pt(200, 100)},
		{rect: image.Rect(0, 0, 400, 800), size: Size{Width: 200, Height: 200}, expected: image.Pt(100, 200)},
		{rect: image.Rect(0, 0, 800, 400), size: Size{Width: 100}, expected: image.Pt(100, 50)},
		{rect: image.Rect(0, 0, 800, 400), size: Size{Height: 100}, expected: image.Pt(200, 100)},
		{rect: image.Rect(250, 100, 750, 400), size: Size{}, expected: image.Pt(500, 300)},
		{rect: image.Rect(0, 0, 100, 100), size: Size{Width: 300, Height: 200}, expected: image.Pt(200, 200)},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("%v into %dx%d", tc.rect, tc.size.Width, tc.size.Height), func(t *testing.T) {
			out := it.apply(src, CropRect{Rect: tc.rect, Size: tc.size})

			assert.Equal(t, tc.expected, out.Bounds().Size())

			if !tc.size.None() && tc.size.Width != 0 && tc.size.Height != 0 {
				assert.True(t, out.Bounds().Dx() <= tc.size.Width && out.Bounds().Dy() <= tc.size.Height)
				assert.True(t, out.Bounds().Dx() == tc.size.Width || out.Bounds().Dy() == tc.size.Height)
			}
		})
	}

	t.Run("samples only inside the rectangle", func(t *testing.T) {
		img := stripes(300, 100, []int{100, 200}, red, green, blue)

		out := it.apply(img, CropRect{Rect: image.Rect(100, 0, 200, 100), Size: Size{Width: 50, Height: 50}})

		assert.Equal(t, image.Pt(50, 50), out.Bounds().Size())
		assertColorNear(t, green, out.At(0, 0))
		assertColorNear(t, green, out.At(49, 49))
	})

	t.Run("rectangle is relative to the image origin", func(t *testing.T) {
		img := stripes(300, 100, []int{100, 200}, red, green, blue).SubImage(image.Rect(100, 0, 300, 100))

		out := it.apply(img, CropRect{Rect: image.Rect(0, 0, 100, 100)})

		assert.Equal(t, image.Pt(100, 100), out.Bounds().Size())
		assertColorNear(t, green, out.At(50, 50))
	})
}

func TestImageTransformer_FocusCrop(t *testing.T) {
	it := newImageTransformer(DefaultConfig())
	img := stripes(400, 300, []int{50, 350}, red, green, blue)

	t.Run("output has exactly the requested size", func(t *testing.T) {
		out := it.apply(img, FocusCrop{
			Center: Point{X: 0.5, Y: 0.5},
			Window: image.Rect(50, 0, 350, 300),
			Size:   Size{Width: 100, Height: 100},
		})

		assert.Equal(t, image.Pt(100, 100), out.Bounds().Size())
		assertColorNear(t, green, out.At(0, 0))
		assertColorNear(t, green, out.At(50, 50))
		assertColorNear(t, green, out.At(99, 99))
	})

	t.Run("window matching the size is not resampled", func(t *testing.T) {
		out := it.apply(img, FocusCrop{
			Center: Point{X: 0, Y: 0},
			Window: image.Rect(0, 0, 100, 100),
			Size:   Size{Width: 100, Height: 100},
		})

		assert.Equal(t, image.Pt(100, 100), out.Bounds().Size())
		assertColorNear(t, red, out.At(10, 10))
		assertColorNear(t, green, out.At(90, 10))
	})

	t.Run("upscaled output", func(t *testing.T) {
		out := it.apply(img, FocusCrop{
			Center: Point{X: 0.5, Y: 0.5},
			Window: image.Rect(50, 0, 350, 300),
			Size:   Size{Width: 800, Height: 800},
		})

		assert.Equal(t, image.Pt(800, 800), out.Bounds().Size())
	})
}

func TestImageTransformer_PlainResize(t *testing.T) {
	it := newImageTransformer(DefaultConfig())
	img := imaging.New(400, 200, red)

	tt := []struct {
		size     Size
		expected image.Point
	}{
		{size: Size{Width: 300}, expected: image.Pt(300, 150)},
		{size: Size{Height: 50}, expected: image.Pt(100, 50)},
		{size: Size{Width: 100, Height: 100}, expected: image.Pt(100, 100)},
		{size: Size{Width: 800, Height: 10}, expected: image.Pt(800, 10)},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("%dx%d", tc.size.Width, tc.size.Height), func(t *testing.T) {
			out := it.apply(img, PlainResize{Size: tc.size})
			assert.Equal(t, tc.expected, out.Bounds().Size())
		})
	}
}

func TestImageTransformer_NoTransform(t *testing.T) {
	it := newImageTransformer(DefaultConfig())
	img := imaging.New(40, 20, red)

	assert.Equal(t, image.Image(img), it.apply(img, NoTransform{}))
}

func Test_fitWithin(t *testing.T) {
	tt := []struct {
		w, h   int
		bounds Size
		ew, eh int
	}{
		{w: 800, h: 800, bounds: Size{Width: 200, Height: 200}, ew: 200, eh: 200},
		{w: 800, h: 400, bounds: Size{Width: 200, Height: 200}, ew: 200, eh: 100},
		{w: 400, h: 800, bounds: Size{Width: 200, Height: 200}, ew: 100, eh: 200},
		{w: 100, h: 100, bounds: Size{Width: 300, Height: 200}, ew: 200, eh: 200},
		{w: 1000, h: 1, bounds: Size{Width: 100, Height: 100}, ew: 100, eh: 1},
		{w: 1, h: 1000, bounds: Size{Width: 100, Height: 100}, ew: 1, eh: 100},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("%dx%d in %dx%d", tc.w, tc.h, tc.bounds.Width, tc.bounds.Height), func(t *testing.T) {
			w, h := fitWithin(tc.w, tc.h, tc.bounds)
			assert.Equal(t, tc.ew, w)
			assert.Equal(t, tc.eh, h)
		})
	}
}

func TestOrientation_normalize(t *testing.T) {
	// 2x1 image: red on the left, blue on the right
	img := stripes(2, 1, []int{1}, red, blue)

	tt := []struct {
		o      orientation
		size   image.Point
		redAt  image.Point
		blueAt image.Point
	}{
		{o: topLeftSide, size: image.Pt(2, 1), redAt: image.Pt(0, 0), blueAt: image.Pt(1, 0)},
		{o: topRightSide, size: image.Pt(2, 1), redAt: image.Pt(1, 0), blueAt: image.Pt(0, 0)},
		{o: bottomRightSide, size: image.Pt(2, 1), redAt: image.Pt(1, 0), blueAt: image.Pt(0, 0)},
		{o: bottomLeftSide, size: image.Pt(2, 1), redAt: image.Pt(0, 0), blueAt: image.Pt(1, 0)},
		{o: leftSideTop, size: image.Pt(1, 2), redAt: image.Pt(0, 0), blueAt: image.Pt(0, 1)},
		{o: rightSideTop, size: image.Pt(1, 2), redAt: image.Pt(0, 0), blueAt: image.Pt(0, 1)},
		{o: rightSideBottom, size: image.Pt(1, 2), redAt: image.Pt(0, 1), blueAt: image.Pt(0, 0)},
		{o: leftSideBottom, size: image.Pt(1, 2), redAt: image.Pt(0, 1), blueAt: image.Pt(0, 0)},
	}

	for _, tc := range tt {
		t.Run(fmt.Sprintf("orientation %d", tc.o), func(t *testing.T) {
			out := tc.o.normalize(img)

			assert.Equal(t, tc.size, out.Bounds().Size())
			assert.Equal(t, red, color.NRGBAModel.Convert(out.At(tc.redAt.X, tc.redAt.Y)))
			assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(tc.blueAt.X, tc.blueAt.Y)))
		})
	}

	assert.False(t, unknownOrientation.requiresNormalization())
	assert.False(t, topLeftSide.requiresNormalization())
	assert.True(t, rightSideTop.requiresNormalization())
}
