// Package imaging is the codec boundary around the sobel engine.
//
// It decodes image files into Go images, copies them into flat
// channel-interleaved buffers the engine works on, and turns result buffers
// back into Go images for encoding.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Channels
//
// Grayscale sources (*image.Gray, *image.Gray16) become one-channel buffers.
// All other sources become three-channel RGB buffers; alpha is discarded.
// No color-space conversion is done beyond the optional luminance reduction
// requested with the gray flag of ToBuffer.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Other functions are
// stateless and can be called concurrently on different images.
//
// # Error Handling
//
// Failures to read a source wrap ErrUnreadable. Output paths with an
// extension that cannot be encoded wrap ErrUnsupportedFormat; check with
// CheckOutputPath before doing any work. Save never leaves a partially
// written file at the destination.
package imaging
