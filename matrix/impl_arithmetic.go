// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic engine over *Sparse operands:
// element-wise addition, subtraction and matrix multiplication, plus the Op
// dispatcher Compute. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep one kernel per operation family (addSub, mul) and route every public
//     entry point through them.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Operands are never mutated; each call allocates a fresh result.
//   - Arithmetic is arbitrary precision (math/big): no wraparound.
//   - Computed zeros are not stored. The serialized result is identical to a
//     dense materialization because zeros are never written out.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opCompute = "Compute"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign·b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the merge loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Sparse(rows, cols).
//   - Stage 2: copy a's stored entries, then fold b's entries in with the sign.
//   - Stage 3: drop coordinates whose sum is zero.
//
// Behavior highlights:
//   - Work is proportional to the stored entries, not to rows·cols.
//   - Inputs remain immutable.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *Sparse, sign int, opTag string) (*Sparse, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewSparse(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	for i, rowMap := range a.data {
		for j, v := range rowMap {
			if v.Sign() != 0 {
				res.put(i, j, new(big.Int).Set(v))
			}
		}
	}
	for i, rowMap := range b.data {
		for j, v := range rowMap {
			if v.Sign() == 0 {
				continue
			}
			acc := res.get(i, j)
			if acc == nil {
				acc = new(big.Int)
				res.put(i, j, acc)
			}
			if sign < 0 {
				acc.Sub(acc, v)
			} else {
				acc.Add(acc, v)
			}
		}
	}
	res.dropZeros()

	return res, nil
}

// dropZeros removes every stored zero (and any row map left empty).
func (m *Sparse) dropZeros() {
	for i, rowMap := range m.data {
		for j, v := range rowMap {
			if v.Sign() == 0 {
				delete(rowMap, j)
			}
		}
		if len(rowMap) == 0 {
			delete(m.data, i)
		}
	}
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Inputs:
//   - A, B: non-nil matrices with identical shapes.
//
// Returns:
//   - *Sparse: shape (A.Rows, A.Cols), C[i,j] = A[i,j] + B[i,j], absent reads as 0.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)).
func Add(a, b *Sparse) (*Sparse, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(A) + nnz(B)).
func Sub(a, b *Sparse) (*Sparse, error) { return addSub(a, b, -1, opSub) }

// Mul performs matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: for each stored non-zero A[i,k], scan the stored row k of B and
//     accumulate A[i,k]·B[k,j] into C[i,j] (row-by-row Gustavson order).
//   - Stage 3: drop accumulators that cancelled out to zero.
//
// Behavior highlights:
//   - Same values as the dense triple loop Σ_k A[i,k]·B[k,j]; absent and zero
//     terms contribute nothing, so they are skipped.
//
// Returns:
//   - *Sparse with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(Σ_{(i,k)∈A} nnz(B row k)), Space O(nnz(C)).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewSparse(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	term := new(big.Int) // scratch product, reused across iterations
	for i, rowA := range a.data {
		for k, av := range rowA {
			if av.Sign() == 0 {
				continue
			}
			rowB, ok := b.data[k]
			if !ok {
				continue
			}
			for j, bv := range rowB {
				if bv.Sign() == 0 {
					continue
				}
				acc := res.get(i, j)
				if acc == nil {
					acc = new(big.Int)
					res.put(i, j, acc)
				}
				acc.Add(acc, term.Mul(av, bv))
			}
		}
	}
	res.dropZeros()

	return res, nil
}

// Compute dispatches op over (a, b).
//
// Errors:
//   - ErrInvalidOperation for an Op outside {OpAdd, OpSubtract, OpMultiply}.
//   - Everything Add, Sub and Mul return, wrapped with the Compute tag.
//
// AI-Hints:
//   - Pair with ParseOp to go from a user-supplied name to a result.
func Compute(a, b *Sparse, op Op) (*Sparse, error) {
	var (
		res *Sparse
		err error
	)
	switch op {
	case OpAdd:
		res, err = Add(a, b)
	case OpSubtract:
		res, err = Sub(a, b)
	case OpMultiply:
		res, err = Mul(a, b)
	default:
		return nil, matrixErrorf(opCompute, fmt.Errorf("%s: %w", op, ErrInvalidOperation))
	}
	if err != nil {
		return nil, matrixErrorf(opCompute, err)
	}

	return res, nil
}
