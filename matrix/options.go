// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text codec.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts Parse or Write and is covered by tests.
//   - Parity knobs are opt-in: the defaults describe the corrected behavior,
//     the With* setters restore the historical quirks of the file format.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShapePolicy takes the shape from the rows=/cols= header.
	DefaultShapePolicy = ShapeDeclared

	// DefaultRejectDuplicates keeps last-write-wins for repeated coordinates.
	DefaultRejectDuplicates = false

	// DefaultLegacyColumnHeader emits the real column count in "cols=".
	DefaultLegacyColumnHeader = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicShapePolicyInvalid = "matrix: WithShapePolicy: unknown policy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	shapePolicy        ShapePolicy // DefaultShapePolicy
	rejectDuplicates   bool        // DefaultRejectDuplicates
	legacyColumnHeader bool        // DefaultLegacyColumnHeader
}

// ShapePolicy returns the effective parser shape policy.
func (o Options) ShapePolicy() ShapePolicy { return o.shapePolicy }

// RejectDuplicates reports whether repeated coordinates fail parsing.
func (o Options) RejectDuplicates() bool { return o.rejectDuplicates }

// LegacyColumnHeader reports whether headers carry cols-1 (Write) and are read back as cols+1 (Parse).
func (o Options) LegacyColumnHeader() bool { return o.legacyColumnHeader }

// WithShapePolicy selects where Parse takes the matrix shape from.
// Panics on a policy outside {ShapeDeclared, ShapeBoundingBox} (programmer error).
//
// AI-Hints:
//   - ShapeBoundingBox accepts legacy files whose headers disagree with their entries.
func WithShapePolicy(p ShapePolicy) Option {
	if p != ShapeDeclared && p != ShapeBoundingBox {
		panic(panicShapePolicyInvalid)
	}

	return func(o *Options) { o.shapePolicy = p }
}

// WithRejectDuplicates makes Parse fail with ErrDuplicateEntry when a
// coordinate is listed twice. The default is last-write-wins.
func WithRejectDuplicates() Option {
	return func(o *Options) { o.rejectDuplicates = true }
}

// WithAllowDuplicates restores last-write-wins for repeated coordinates.
func WithAllowDuplicates() Option {
	return func(o *Options) { o.rejectDuplicates = false }
}

// WithLegacyColumnHeader switches the codec to the legacy header, where
// "cols=" holds the last column index instead of the count. Write emits
// cols-1; Parse under ShapeDeclared reads cols+1, so legacy files round-trip.
//
// Notes:
//   - A 0-column matrix has no legacy header; Write returns ErrEmptyMatrix.
func WithLegacyColumnHeader() Option {
	return func(o *Options) { o.legacyColumnHeader = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins for conflicting setters.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		shapePolicy:        DefaultShapePolicy,
		rejectDuplicates:   DefaultRejectDuplicates,
		legacyColumnHeader: DefaultLegacyColumnHeader,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
