package mandel

import "testing"

func TestPlanMirror(t *testing.T) {
	tests := []struct {
		name       string
		view       View
		active     bool
		sum        int
		bottom     bool
		lo, hi     int // expected computedRange when active
	}{
		{
			name:   "axis through center, even height",
			view:   View{Zoom: 1, Width: 4, Height: 4},
			active: true,
			sum:    3,
			bottom: true,
			lo:     2, hi: 4,
		},
		{
			name:   "axis through center, odd height",
			view:   View{Zoom: 1, Width: 5, Height: 5},
			active: true,
			sum:    4,
			bottom: true,
			lo:     2, hi: 5,
		},
		{
			name: "axis in upper half",
			// step = 4/100; centerImag = -10 steps puts the axis above
			// the middle, so the bottom half is the larger one.
			view:   View{CenterImag: -0.4, Zoom: 1, Width: 100, Height: 100},
			active: true,
			sum:    79,
			bottom: true,
			lo:     40, hi: 100,
		},
		{
			name:   "axis in lower half",
			view:   View{CenterImag: 0.4, Zoom: 1, Width: 100, Height: 100},
			active: true,
			sum:    119,
			bottom: false,
			lo:     0, hi: 60,
		},
		{
			name:   "axis outside the image",
			view:   View{CenterImag: 3, Zoom: 1, Width: 64, Height: 64},
			active: false,
		},
		{
			name: "axis offset not an integral number of half-steps",
			// 2*centerImag/step = 0.5: no pixel row pair mirrors exactly.
			view:   View{CenterImag: 0.5 * 4.0 / 64 / 2, Zoom: 1, Width: 64, Height: 64},
			active: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := planMirror(tt.view)
			if m.active != tt.active {
				t.Fatalf("active = %v, want %v", m.active, tt.active)
			}
			if !tt.active {
				lo, hi := m.computedRange(tt.view.Height)
				if lo != 0 || hi != tt.view.Height {
					t.Errorf("inactive plan computedRange = [%d, %d), want all rows", lo, hi)
				}
				return
			}
			if m.sum != tt.sum || m.bottom != tt.bottom {
				t.Errorf("plan = {sum: %d, bottom: %v}, want {sum: %d, bottom: %v}", m.sum, m.bottom, tt.sum, tt.bottom)
			}
			lo, hi := m.computedRange(tt.view.Height)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("computedRange = [%d, %d), want [%d, %d)", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestPlanMirror_PartnerCoordinatesNegate(t *testing.T) {
	v := View{CenterImag: 0.4, Zoom: 1, Width: 100, Height: 100}
	m := planMirror(v)
	if !m.active {
		t.Fatal("expected an active plan")
	}

	for y := 0; y < v.Height; y++ {
		if m.computed(y) {
			continue
		}
		p := m.partner(y)
		if p < 0 || p >= v.Height || !m.computed(p) {
			t.Fatalf("mirrored row %d has invalid partner %d", y, p)
		}
		imY := v.imagCoord(y)
		imP := v.imagCoord(p)
		// Negation is exact up to the rounding of the affine mapping
		// itself, far below a pixel step.
		if d := imY + imP; d > 1e-12*v.Step() || d < -1e-12*v.Step() {
			t.Errorf("rows %d/%d: imaginary parts %v and %v are not negations", y, p, imY, imP)
		}
	}
}

func TestPlanMirror_EveryRowCoveredExactlyOnce(t *testing.T) {
	for _, h := range []int{1, 2, 3, 4, 5, 17, 100, 101} {
		v := View{Zoom: 1, Width: h, Height: h}
		m := planMirror(v)
		lo, hi := m.computedRange(h)

		written := make([]int, h)
		for y := lo; y < hi; y++ {
			written[y]++
			if m.active {
				if p := m.partner(y); p >= 0 && p < h && !m.computed(p) {
					written[p]++
				}
			}
		}
		for y, n := range written {
			if n != 1 {
				t.Errorf("height %d: row %d written %d times", h, y, n)
			}
		}
	}
}
