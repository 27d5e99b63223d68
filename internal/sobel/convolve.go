package sobel

// Job is one worker's share of a convolution pass: apply Kernel to the rows
// in Rows of Src and write the clamped results into the same rows of Dst.
type Job struct {
	Src      *Image
	Dst      *Image
	Kernel   Kernel
	Rows     RowRange
	Channels int
	Stride   int // bytes per row, Width*Channels
}

// NewJob builds the job for one row range of one pass.
func NewJob(src, dst *Image, k Kernel, rows RowRange) Job {
	return Job{
		Src:      src,
		Dst:      dst,
		Kernel:   k,
		Rows:     rows,
		Channels: src.Channels,
		Stride:   src.Stride(),
	}
}

// Run convolves every channel of every interior column of the job's rows.
//
// For row y, column x and channel d the output is
//
//	sum over dx, dy in [-1, 1] of Src[y+dy, x+dx, d] * Kernel[dx+1][dy+1]
//
// clamped to [0, 255]. Row 0, row H-1, column 0 and column W-1 are never
// written, and nothing outside Rows is touched.
func (j Job) Run() {
	src := j.Src.Pix
	dst := j.Dst.Pix
	depth := j.Channels
	width := j.Src.Width

	for d := 0; d < depth; d++ {
		for y := j.Rows.Start; y < j.Rows.End; y++ {
			for x := 1; x < width-1; x++ {
				center := x*depth + d
				sum := 0
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						v := int(src[(y+dy)*j.Stride+center+dx*depth])
						sum += v * j.Kernel[dx+1][dy+1]
					}
				}
				dst[y*j.Stride+center] = clampByte(sum)
			}
		}
	}
}

// clampByte constrains a convolution sum to the byte range.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
