package sobel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidShape is returned for a width, height or channel count below 1.
	ErrInvalidShape = errors.New("invalid image shape")

	// ErrTooLarge is returned when Width*Height*Channels does not fit in an int.
	ErrTooLarge = errors.New("image too large to allocate")

	// ErrShapeMismatch is returned when buffers that must share a shape do not.
	ErrShapeMismatch = errors.New("image shapes do not match")
)

// Image is a flat 8-bit pixel buffer.
//
// Pix holds exactly Width*Height*Channels bytes, row-major, with the channels
// of each pixel interleaved. There is no padding between rows, so the stride
// is always Width*Channels.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewImage allocates a zeroed buffer of the given shape.
func NewImage(width, height, channels int) (*Image, error) {
	if width < 1 || height < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidShape, width, height, channels)
	}
	if width > math.MaxInt/height || width*height > math.MaxInt/channels {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrTooLarge, width, height, channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}, nil
}

// NewImageLike allocates a zeroed buffer with the same shape as m.
func NewImageLike(m *Image) (*Image, error) {
	return NewImage(m.Width, m.Height, m.Channels)
}

// Validate checks that the shape is positive and that Pix has exactly the
// length the shape requires.
func (m *Image) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidShape)
	}
	if m.Width < 1 || m.Height < 1 || m.Channels < 1 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidShape, m.Width, m.Height, m.Channels)
	}
	if want := m.Width * m.Height * m.Channels; len(m.Pix) != want {
		return fmt.Errorf("%w: buffer holds %d bytes, shape %dx%dx%d needs %d",
			ErrInvalidShape, len(m.Pix), m.Width, m.Height, m.Channels, want)
	}
	return nil
}

// Stride is the number of bytes in one row.
func (m *Image) Stride() int {
	return m.Width * m.Channels
}

// Offset returns the index in Pix of channel d of the pixel at column x, row y.
func (m *Image) Offset(x, y, d int) int {
	return y*m.Stride() + x*m.Channels + d
}

// At returns channel d of the pixel at (x, y).
func (m *Image) At(x, y, d int) uint8 {
	return m.Pix[m.Offset(x, y, d)]
}

// Set writes channel d of the pixel at (x, y).
func (m *Image) Set(x, y, d int, v uint8) {
	m.Pix[m.Offset(x, y, d)] = v
}

// SameShape reports whether m and o have identical width, height and channel count.
func (m *Image) SameShape(o *Image) bool {
	return m.Width == o.Width && m.Height == o.Height && m.Channels == o.Channels
}

// Fill sets every byte of the buffer to v.
func (m *Image) Fill(v uint8) {
	for i := range m.Pix {
		m.Pix[i] = v
	}
}
