package parallel

import "runtime"

// Band is a contiguous half-open range of image rows [Y0, Y1) claimed by
// exactly one work item. The scheduler's safety argument rests on bands
// being pairwise disjoint.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions the half-open row range [y0, y1) into contiguous,
// disjoint bands. It produces a few bands per worker so that stealing
// can rebalance uneven bands, while keeping each band large enough to
// amortize dispatch. Sizes differ by at most one row.
//
// If workers <= 0, GOMAXPROCS is used. An empty range yields no bands.
func SplitRows(y0, y1, workers int) []Band {
	n := y1 - y0
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	count := workers * 4
	if count > n {
		count = n
	}

	bands := make([]Band, 0, count)
	base := n / count
	extra := n % count
	row := y0
	for i := 0; i < count; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, Band{Y0: row, Y1: row + size})
		row += size
	}
	return bands
}
