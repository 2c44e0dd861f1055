package gate

import "math/cmplx"

// IsUnitarySingle reports whether U·U† = I within tol, entry-wise.
func IsUnitarySingle(m Single, tol float64) bool {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				sum += m[r][k] * cmplx.Conj(m[c][k])
			}
			want := complex128(0)
			if r == c {
				want = 1
			}
			if cmplx.Abs(sum-want) > tol {
				return false
			}
		}
	}
	return true
}

// IsUnitaryTwo reports whether U·U† = I within tol, entry-wise.
func IsUnitaryTwo(m Two, tol float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum complex128
			for k := 0; k < 4; k++ {
				sum += m[r][k] * cmplx.Conj(m[c][k])
			}
			want := complex128(0)
			if r == c {
				want = 1
			}
			if cmplx.Abs(sum-want) > tol {
				return false
			}
		}
	}
	return true
}
