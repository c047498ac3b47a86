// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return tagged sentinel errors so call sites can match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateFiniteNonNegative scans m and rejects NaN/±Inf (ErrNaNInf) and
// negative values (ErrNegative). The first offending cell in row-major order
// is reported.
//
// Complexity: O(r*c).
func ValidateFiniteNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	var (
		i, j int
		v    float64
	)
	if d, ok := m.(*Dense); ok {
		// Fast path over the flat slice.
		for i = 0; i < d.r; i++ {
			for j = 0; j < d.c; j++ {
				if err := checkCell(i, j, d.data[i*d.c+j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if err := checkCell(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkCell(i, j int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf(fmt.Sprintf("ValidateFiniteNonNegative(%d,%d)", i, j), ErrNaNInf)
	}
	if v < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateFiniteNonNegative(%d,%d)", i, j), ErrNegative)
	}

	return nil
}
