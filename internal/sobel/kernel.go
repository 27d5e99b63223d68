package sobel

// Kernel is a 3x3 integer weight matrix.
type Kernel [3][3]int

// SobelX returns the horizontal-derivative kernel
//
//	-1  0  1
//	-2  0  2
//	-1  0  1
func SobelX() Kernel {
	return Kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
}

// SobelY returns the vertical-derivative kernel
//
//	-1 -2 -1
//	 0  0  0
//	 1  2  1
func SobelY() Kernel {
	return Kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
}

// Weight returns the weight applied to the neighbour at horizontal offset dx
// and vertical offset dy, both in [-1, 1].
//
// The first index follows the horizontal offset, not the row. See the
// package documentation.
func (k Kernel) Weight(dx, dy int) int {
	return k[dx+1][dy+1]
}
