// File: validators.go — distance-matrix validation shared by consumers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix size; no hidden allocations.

package matrix

import "math"

// DefaultSymTol is a structural tolerance for symmetry checks in distance
// matrices. It bounds |a_ij − a_ji| rather than any solver acceptance logic.
const DefaultSymTol = 1e-12

// ValidateDistances performs full distance-matrix validation against an
// expected order n:
//   - non-nil, square, Rows() == n,
//   - every entry finite (NaN/±Inf rejected),
//   - no negative entries,
//   - symmetric within tol: |a_ij − a_ji| ≤ tol.
//
// The diagonal is free apart from finiteness and non-negativity; distance
// consumers here never read a_ii.
//
// Error priority (enforced in tests): nil → square → order mismatch →
// NaN/Inf → negativity → asymmetry.
//
// Complexity: O(n²).
func ValidateDistances(dist Matrix, n int, tol float64) error {
	// Stage 1: shape checks (non-nil, square, expected order).
	if dist == nil {
		return ErrNilMatrix
	}
	nr, nc := dist.Rows(), dist.Cols()
	if nr != nc || nr <= 0 {
		return ErrNonSquare
	}
	if nr != n {
		return ErrDimensionMismatch
	}

	// Stage 2: finiteness and negativity over all entries.
	var (
		i, j int
		aij  float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, err = dist.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return ErrNaNInf
			}
			if aij < 0 {
				return ErrNegativeValue
			}
		}
	}

	// Stage 3: symmetry over the upper triangle (avoid double work).
	var aji, abs float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = dist.At(i, j)
			if err != nil {
				return err
			}
			aji, err = dist.At(j, i)
			if err != nil {
				return err
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs // |a_ij - a_ji|
			}
			if abs > tol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
