package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-sobel/internal/sobel"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// ErrUnsupportedFormat is returned for an output path whose extension names
// no encodable format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// CheckOutputPath verifies that path ends in an extension Save can encode:
// .jpg, .jpeg, .png, .gif, .tif, .tiff or .bmp.
func CheckOutputPath(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return nil
}

// Save encodes buf to path. The format is chosen from the extension and
// quality applies to JPEG output only.
//
// The encoded bytes go to a temporary file in the destination directory that
// is renamed over path once complete, so a failed save never leaves a
// partial file behind. A new file gets mode 0644; an existing file keeps its
// permission bits.
func Save(path string, buf *sobel.Image, quality int) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	img, err := FromBuffer(buf)
	if err != nil {
		return fmt.Errorf("failed to convert buffer: %w", err)
	}

	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, format, imaging.JPEGQuality(quality)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// EncodePNGBase64 returns img as a base64-encoded PNG.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
