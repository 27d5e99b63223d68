package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-sobel/internal/sobel"
)

// SobelEdgeResult contains a Sobel gradient-magnitude image encoded as base64 PNG.
//
// Bright pixels mark strong intensity changes. The one-pixel border is
// always black because the 3x3 kernels are only applied to interior pixels.
type SobelEdgeResult struct {
	// Width of the output image in pixels (same as input).
	Width int `json:"width"`

	// Height of the output image in pixels (same as input).
	Height int `json:"height"`

	// Channels is 1 for grayscale output and 3 for per-channel RGB output.
	Channels int `json:"channels"`

	// Workers is the number of row ranges each pass was split into.
	Workers int `json:"workers"`

	// Stats holds per-pass timing.
	Stats sobel.Stats `json:"stats"`

	// ImageBase64 is the magnitude image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// OutputPath is set when the result was also written to disk.
	OutputPath string `json:"output_path,omitempty"`
}

// SobelEdge computes the Sobel gradient magnitude of img.
//
// Parameters:
//   - img: Source image (color or grayscale).
//   - workers: Number of row ranges per pass. Must be at least 1.
//   - gray: Reduce a color image to luminance first, producing one channel.
//
// Returns:
//   - *SobelEdgeResult: Magnitude image as base64 PNG, plus timing.
//   - *sobel.Image: The raw magnitude buffer, for callers that also Save it.
//   - error: Non-nil if workers is invalid or PNG encoding fails.
//
// # Algorithm
//
// Each channel is processed independently:
//
//  1. Horizontal pass: 3x3 Sobel X kernel over every interior pixel, split
//     into one contiguous row range per worker, clamped to [0, 255].
//  2. Vertical pass: the same with the Sobel Y kernel.
//  3. Magnitude: round(sqrt(Gx² + Gy²)), clamped to 255.
//
// Negative directional responses clamp to 0 before the magnitude is taken,
// so an edge is only seen from its rising side in each direction.
func SobelEdge(img image.Image, workers int, gray bool) (*SobelEdgeResult, *sobel.Image, error) {
	src, err := ToBuffer(img, gray)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate source buffer: %w", err)
	}

	det, err := sobel.NewDetector(workers)
	if err != nil {
		return nil, nil, err
	}
	defer det.Close()

	res, err := det.Detect(src)
	if err != nil {
		return nil, nil, fmt.Errorf("edge detection failed: %w", err)
	}

	out, err := FromBuffer(res.Magnitude)
	if err != nil {
		return nil, nil, err
	}
	encoded, err := EncodePNGBase64(out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode edge image: %w", err)
	}

	return &SobelEdgeResult{
		Width:       src.Width,
		Height:      src.Height,
		Channels:    src.Channels,
		Workers:     workers,
		Stats:       res.Stats,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, res.Magnitude, nil
}
