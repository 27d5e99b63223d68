package sobel

import (
	"fmt"
	"math"
)

// Combine writes the gradient magnitude of gx and gy into dst.
//
// Every byte is combined, border included:
//
//	dst[i] = clamp(round(sqrt(gx[i]² + gy[i]²)), 0, 255)
//
// The three buffers must share one shape.
func Combine(gx, gy, dst *Image) error {
	if !gx.SameShape(gy) || !gx.SameShape(dst) {
		return fmt.Errorf("%w: gx %dx%dx%d, gy %dx%dx%d, dst %dx%dx%d", ErrShapeMismatch,
			gx.Width, gx.Height, gx.Channels,
			gy.Width, gy.Height, gy.Channels,
			dst.Width, dst.Height, dst.Channels)
	}

	for i := range dst.Pix {
		a := int(gx.Pix[i])
		b := int(gy.Pix[i])
		dst.Pix[i] = magnitude(a*a + b*b)
	}
	return nil
}

// magnitude returns round(sqrt(sq)) clamped to 255. The largest possible
// input is 2*255², about 360.6 after the root.
func magnitude(sq int) uint8 {
	out := math.Round(math.Sqrt(float64(sq)))
	if out > 255 {
		return 255
	}
	return uint8(out)
}
