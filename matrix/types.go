// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the parser, engine and serializer.
// This file intentionally contains ONLY domain-facing types (operation tag,
// coordinate entry, shape policy). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Op is the arithmetic operation applied by Compute.
// The zero value is not a valid operation.
type Op int

const (
	opInvalid Op = iota // zero value; rejected by Compute

	// OpAdd computes a + b element-wise.
	OpAdd
	// OpSubtract computes a - b element-wise.
	OpSubtract
	// OpMultiply computes the matrix product a × b.
	OpMultiply
)

// Operation names as they appear on the command line and in output file names.
const (
	nameAdd      = "add"
	nameSubtract = "subtract"
	nameMultiply = "multiply"
)

// ParseOp maps an operation name to its Op.
// Matching is case-insensitive and ignores surrounding whitespace.
// Returns ErrInvalidOperation for anything outside {add, subtract, multiply}.
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case nameAdd:
		return OpAdd, nil
	case nameSubtract:
		return OpSubtract, nil
	case nameMultiply:
		return OpMultiply, nil
	}

	return opInvalid, fmt.Errorf("%q: %w", name, ErrInvalidOperation)
}

// Ops lists every valid operation in a stable order (useful for help text).
func Ops() []Op { return []Op{OpAdd, OpSubtract, OpMultiply} }

// String returns the lower-case operation name ("add", "subtract", "multiply").
func (op Op) String() string {
	switch op {
	case OpAdd:
		return nameAdd
	case OpSubtract:
		return nameSubtract
	case OpMultiply:
		return nameMultiply
	}

	return fmt.Sprintf("Op(%d)", int(op))
}

// Valid reports whether op is one of the defined operations.
func (op Op) Valid() bool { return op >= OpAdd && op <= OpMultiply }

// Entry is one stored coordinate of a sparse matrix.
// Value is always a private copy; mutating it never affects the matrix.
type Entry struct {
	Row   int      // zero-based row index
	Col   int      // zero-based column index
	Value *big.Int // stored value (non-nil)
}

// ShapePolicy decides where the parser takes a matrix shape from.
type ShapePolicy int

const (
	// ShapeDeclared uses the rows=/cols= header as the shape and rejects entries
	// outside it. Trailing all-zero rows and columns survive.
	ShapeDeclared ShapePolicy = iota

	// ShapeBoundingBox discards the header and derives the shape as the tight
	// bounding box of the stored coordinates (max index + 1 on each axis).
	// A file without entries has no derivable shape (ErrEmptyMatrix).
	ShapeBoundingBox
)

// String returns the policy name used by configuration files.
func (p ShapePolicy) String() string {
	switch p {
	case ShapeDeclared:
		return "declared"
	case ShapeBoundingBox:
		return "bounding-box"
	}

	return fmt.Sprintf("ShapePolicy(%d)", int(p))
}

// ParseShapePolicy maps "declared" / "bounding-box" (case-insensitive) to a policy.
// An empty string selects ShapeDeclared.
func ParseShapePolicy(s string) (ShapePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "declared":
		return ShapeDeclared, nil
	case "bounding-box", "boundingbox", "bbox":
		return ShapeBoundingBox, nil
	}

	return ShapeDeclared, fmt.Errorf("matrix: unknown shape policy %q", s)
}
