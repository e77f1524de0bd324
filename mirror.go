package mandel

import "math"

// mirrorPlan captures how a render exploits the conjugation symmetry of
// the set. When the rendered window straddles the real axis, the rows of
// one half of the image are exact vertical mirrors of the other half, so
// only the larger half needs the iteration kernel; the rest is copied.
//
// Partner rows are related by pure index arithmetic: row y mirrors row
// sum − y. The plan is only active when that relation is exact, i.e.
// when the mirrored row's imaginary coordinate is the negation of its
// source's.
type mirrorPlan struct {
	active bool
	sum    int  // partner rows satisfy src + dst == sum
	bottom bool // true when the bottom half is the computed one
}

// planMirror decides whether and how mirroring applies to a view.
//
// With the affine row mapping im(y) = centerIm − (y − (h−1)/2)·step, two
// rows y and p satisfy im(y) = −im(p) exactly when y + p = (h−1) +
// 2·centerIm/step. That is an integer relation only when the axis offset
// 2·centerIm/step is integral; otherwise no row pair mirrors exactly and
// every row is computed directly (the odd/even-height edge case).
func planMirror(v View) mirrorPlan {
	h := v.Height
	t := 2 * v.CenterImag / v.Step()
	d := math.Round(t)
	tol := 1e-9 * math.Max(1, math.Abs(d))
	if math.Abs(t-d) > tol {
		return mirrorPlan{}
	}

	sum := (h - 1) + int(d)
	// The real axis sits at row sum/2; it must cross the image.
	if sum < 0 || sum > 2*(h-1) {
		return mirrorPlan{}
	}

	// Compute the larger half so worst-case work stays bounded;
	// ties go to the bottom half.
	return mirrorPlan{active: true, sum: sum, bottom: sum <= h-1}
}

// computed reports whether row y is filled by the iteration kernel.
// The axis row, if it coincides with a pixel row, is always computed.
func (m mirrorPlan) computed(y int) bool {
	if !m.active {
		return true
	}
	if m.bottom {
		return 2*y >= m.sum
	}
	return 2*y <= m.sum
}

// partner returns the row that mirrors row y.
func (m mirrorPlan) partner(y int) int {
	return m.sum - y
}

// computedRange returns the half-open row range [lo, hi) that must be
// fed through the iteration kernel. Rows outside it are derived by
// row copies.
func (m mirrorPlan) computedRange(height int) (lo, hi int) {
	if !m.active {
		return 0, height
	}
	if m.bottom {
		return (m.sum + 1) / 2, height
	}
	return 0, m.sum/2 + 1
}
