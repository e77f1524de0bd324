package parallel

import "testing"

func TestSplitRows_CoversRangeDisjointly(t *testing.T) {
	tests := []struct {
		name    string
		y0, y1  int
		workers int
	}{
		{name: "even split", y0: 0, y1: 64, workers: 4},
		{name: "remainder rows", y0: 0, y1: 67, workers: 4},
		{name: "offset range", y0: 24, y1: 48, workers: 3},
		{name: "more bands than rows", y0: 0, y1: 5, workers: 8},
		{name: "single worker", y0: 0, y1: 100, workers: 1},
		{name: "default workers", y0: 0, y1: 100, workers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := SplitRows(tt.y0, tt.y1, tt.workers)
			if len(bands) == 0 {
				t.Fatal("no bands for a non-empty range")
			}

			// Bands must tile [y0, y1) contiguously in order.
			next := tt.y0
			for _, b := range bands {
				if b.Y0 != next {
					t.Fatalf("band %+v does not start at %d", b, next)
				}
				if b.Rows() < 1 {
					t.Fatalf("empty band %+v", b)
				}
				next = b.Y1
			}
			if next != tt.y1 {
				t.Fatalf("bands end at %d, want %d", next, tt.y1)
			}

			// Sizes differ by at most one row.
			min, max := bands[0].Rows(), bands[0].Rows()
			for _, b := range bands {
				if b.Rows() < min {
					min = b.Rows()
				}
				if b.Rows() > max {
					max = b.Rows()
				}
			}
			if max-min > 1 {
				t.Errorf("band sizes vary from %d to %d", min, max)
			}
		})
	}
}

func TestSplitRows_EmptyRange(t *testing.T) {
	if got := SplitRows(10, 10, 4); got != nil {
		t.Errorf("SplitRows on an empty range = %v, want nil", got)
	}
	if got := SplitRows(10, 5, 4); got != nil {
		t.Errorf("SplitRows on an inverted range = %v, want nil", got)
	}
}
