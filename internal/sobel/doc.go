// Package sobel computes the Sobel gradient-magnitude edge map of a raw,
// channel-interleaved pixel buffer.
//
// The package is the parallel stencil engine only. It never decodes or
// encodes a compressed file; callers hand it an Image whose Pix slice holds
// Width*Height*Channels bytes in row-major order and get back buffers of the
// same shape.
//
// # Pipeline
//
// A Detector runs two convolution passes and one combination step:
//
//  1. Pass X: the interior rows are split by Partition into one RowRange per
//     worker, and every range becomes a Job applying SobelX into Gx.
//  2. Barrier: the detector waits for every job of pass X.
//  3. Pass Y: the same partition, a fresh job batch, SobelY into Gy.
//  4. Barrier.
//  5. Combine: Magnitude[i] = clamp(round(sqrt(Gx[i]² + Gy[i]²)), 0, 255)
//     over every byte of the buffer.
//
// # Borders
//
// Workers only write interior pixels (rows 1..H-2, columns 1..W-2). All
// destination buffers are zeroed at allocation, so the one-pixel border of
// Gx and Gy is always 0 and the border of Magnitude is clamp(sqrt(0)) = 0.
//
// # Kernel Orientation
//
// Kernel weights are read as kernel[k+1][l+1] where k is the horizontal
// neighbour offset and l the vertical one. This is the transpose of reading
// the printed matrices as (row, column). The mapping is kept as is because
// changing it swaps the orientation of the detected edges.
//
// # Concurrency
//
// Jobs of one pass own disjoint row ranges of one destination buffer and
// only read the shared source, so no locks are taken. The Pool keeps its
// goroutines alive across passes; each call to Pool.Run is one batch with its
// own barrier. Nothing can be cancelled: a pass returns when every job has
// returned.
package sobel
