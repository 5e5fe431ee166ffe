// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions such as malformed input text.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf(tag, ErrX) so the
// surfaced text reads "<Op>: matrix: <reason>" and errors.Is keeps matching.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> format -> dimension mismatch -> operation dispatch.
//
// Read/write failures (closed readers, missing files, full disks) are NOT
// mapped to a sentinel: the underlying io/os error is wrapped and returned so
// callers can still match fs.ErrNotExist and friends.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	// Public indexers (At/Set/Unset) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilValue indicates that a nil *big.Int was passed to Set.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrFormat signals a malformed header or entry line in the text format:
	// wrong token count, non-integer token, negative coordinate or missing
	// brackets. Parser errors wrap it together with the 1-based line number.
	ErrFormat = errors.New("matrix: incorrect format")

	// ErrDuplicateEntry is returned by the parser under WithRejectDuplicates
	// when the same (row, col) appears twice.
	ErrDuplicateEntry = errors.New("matrix: duplicate entry")

	// ErrEmptyMatrix signals that a shape cannot be derived because no entry is
	// stored (bounding-box policy), or that a legacy header cannot be emitted.
	ErrEmptyMatrix = errors.New("matrix: matrix has no entries")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: matrices must have compatible dimensions")

	// ErrInvalidOperation is returned for an operation name or Op value outside
	// {add, subtract, multiply}.
	ErrInvalidOperation = errors.New("matrix: invalid operation")
)
