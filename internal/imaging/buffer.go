package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-sobel/internal/sobel"
)

// ErrUnsupportedChannels is returned when a buffer's channel count has no
// matching Go image type.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// ChannelsOf returns the channel count ToBuffer produces for img without
// forcing grayscale: 1 for gray images, 3 otherwise.
func ChannelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	return 3
}

// ToBuffer copies img into a freshly allocated pixel buffer.
//
// Gray images produce one channel per pixel and every other image produces
// three (R, G, B; alpha is dropped). With gray set, color images are first
// reduced to luminance and a single channel is produced.
func ToBuffer(img image.Image, gray bool) (*sobel.Image, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		buf, err := sobel.NewImage(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*width:(y+1)*width], src.Pix[i:i+width])
		}
		return buf, nil

	case *image.Gray16:
		buf, err := sobel.NewImage(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				buf.Set(x, y, 0, uint8(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y>>8))
			}
		}
		return buf, nil
	}

	if gray {
		lum := effect.Grayscale(img)
		buf, err := sobel.NewImage(width, height, 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				buf.Set(x, y, 0, lum.Pix[lum.PixOffset(lum.Rect.Min.X+x, lum.Rect.Min.Y+y)])
			}
		}
		return buf, nil
	}

	nrgba := imaging.Clone(img)
	buf, err := sobel.NewImage(width, height, 3)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := nrgba.PixOffset(x, y)
			copy(buf.Pix[buf.Offset(x, y, 0):buf.Offset(x, y, 0)+3], nrgba.Pix[i:i+3])
		}
	}
	return buf, nil
}

// FromBuffer wraps a pixel buffer in a Go image without changing any byte.
//
// One channel becomes *image.Gray, three become an opaque *image.NRGBA and
// four become an *image.NRGBA whose fourth channel is alpha.
func FromBuffer(buf *sobel.Image) (image.Image, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, buf.Width, buf.Height)

	switch buf.Channels {
	case 1:
		g := image.NewGray(rect)
		copy(g.Pix, buf.Pix)
		return g, nil
	case 3:
		out := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(buf.Pix); i, j = i+3, j+4 {
			out.Pix[j] = buf.Pix[i]
			out.Pix[j+1] = buf.Pix[i+1]
			out.Pix[j+2] = buf.Pix[i+2]
			out.Pix[j+3] = 0xff
		}
		return out, nil
	case 4:
		out := image.NewNRGBA(rect)
		copy(out.Pix, buf.Pix)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, buf.Channels)
}
