// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build operands with an explicit shape.
//   - FromEntries is the quickest way to spell a fixture in code.

package matrix

import (
	"fmt"
	"math/big"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns an empty rows×cols matrix.
// It is a thin alias of NewSparse with an intention-revealing name.
func NewZeros(rows, cols int) (*Sparse, error) { return NewSparse(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, nothing stored elsewhere).
// Complexity: O(n).
func NewIdentity(n int) (*Sparse, error) {
	I, err := NewSparse(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.put(i, i, big.NewInt(1))
	}

	return I, nil
}

// ZerosLike returns an empty matrix with the same shape as m.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewSparse(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires a square m.
func IdentityLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if m.r != m.c {
		return nil, matrixErrorf("IdentityLike",
			fmt.Errorf("%dx%d is not square: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return NewIdentity(m.r)
}

// CloneMatrix returns a deep copy of m. Thin wrapper over (*Sparse).Clone.
func CloneMatrix(m *Sparse) *Sparse { return m.Clone() }

// FromEntries builds a rows×cols matrix from entries, later entries winning on
// repeated coordinates (same policy as Parse).
// Errors: ErrBadShape, ErrOutOfRange, ErrNilValue.
func FromEntries(rows, cols int, entries ...Entry) (*Sparse, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, matrixErrorf("FromEntries", err)
		}
	}

	return m, nil
}

// E is shorthand for an Entry with a machine-sized value.
func E(row, col int, v int64) Entry { return Entry{Row: row, Col: col, Value: big.NewInt(v)} }

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Sparse) (*Sparse, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Sparse) (*Sparse, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Sparse) (*Sparse, error) { return Mul(a, b) }
