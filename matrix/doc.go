// Package matrix offers sparse integer matrices and the text format used to
// exchange them.
//
// The matrix package provides:
//
//   - Sparse, a rows×cols matrix that stores only listed entries
//     (row → column → value) with arbitrary-precision integer values and an
//     explicit shape.
//   - Parse / ReadFile, reading the "rows=… / cols=… / (r, c, v)" text format.
//   - Add, Sub, Mul and the Op dispatcher Compute.
//   - Write / Format / WriteFile, producing the same text format with zero
//     entries omitted.
//
// Quick example:
//
//	a, _ := matrix.ParseString("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 4)\n")
//	b, _ := matrix.NewIdentity(2)
//	c, _ := matrix.Compute(a, b, matrix.OpMultiply)
//	text, _ := matrix.Format(c)
//
// See the examples in this package for usage patterns.
package matrix
