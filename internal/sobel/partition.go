package sobel

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkers is returned for a worker count below 1.
var ErrInvalidWorkers = errors.New("worker count must be a positive integer")

// RowRange is the half-open row interval [Start, End).
type RowRange struct {
	Start int
	End   int
}

// Len is the number of rows in the range.
func (r RowRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no rows.
func (r RowRange) Empty() bool {
	return r.Len() == 0
}

// Partition splits the interior rows of an image of the given height into
// exactly workers contiguous ranges.
//
// The interior rows are [1, height-1). With R = height-2 rows, every range
// gets R/workers rows and the first R%workers ranges get one more. Ranges are
// laid out in order starting at row 1, each starting where the previous one
// ended. When workers > R the trailing ranges are empty, and when R <= 0
// every range is empty; both are valid no-op ranges.
func Partition(height, workers int) ([]RowRange, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}

	rows := height - 2
	if rows < 0 {
		rows = 0
	}
	base := rows / workers
	extra := rows % workers

	ranges := make([]RowRange, workers)
	current := 1
	for i := range ranges {
		end := current + base
		if i < extra {
			end++
		}
		ranges[i] = RowRange{Start: current, End: end}
		current = end
	}
	return ranges, nil
}
