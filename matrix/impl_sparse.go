// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate map) & safe accessors.
//
// Purpose:
//   - Store only explicitly listed entries as row → column → value maps.
//   - Carry the shape (rows, cols) as an explicit field, fixed at construction,
//     so trailing all-zero rows/columns are never lost.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism: every exported traversal sorts keys first
//     (no raw map iteration order leaks out).
//
// AI-Hints:
//   - Absent entries read as 0; explicit zeros are stored but never serialized.
//   - Values are *big.Int and are copied on the way in and out; no aliasing.
//   - Use BoundingBox to inspect the shape implied by the stored coordinates alone.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set/Unset: O(1) average; Entries: O(nnz·log nnz);
//     Clone/Equal: O(nnz).

package matrix

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxUnset = "Unset" // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Shape: "Sparse.<method>(row,col): <cause>"; the sentinel survives via %w.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a rows×cols integer matrix that stores only listed entries.
//   - r,c hold the explicit shape (>= 0).
//   - data maps row → (col → value); a row map is never left empty.
type Sparse struct {
	r, c int                      // shape, immutable after construction
	data map[int]map[int]*big.Int // stored coordinates only
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse creates an empty rows×cols matrix (every entry reads as 0).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal: they hold no entries and serialize to a bare header.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Sparse{r: rows, c: cols, data: make(map[int]map[int]*big.Int)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Sparse) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// checkIndex validates 0 ≤ row < r and 0 ≤ col < c.
func (m *Sparse) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return sparseErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At returns a copy of the value at (row, col); absent entries read as 0.
// Errors: ErrOutOfRange for indices outside the shape.
// Complexity: O(1) average.
func (m *Sparse) At(row, col int) (*big.Int, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return nil, err
	}
	if v, ok := m.data[row][col]; ok {
		return new(big.Int).Set(v), nil
	}

	return new(big.Int), nil
}

// get returns the stored value without copying, or nil when absent.
// Internal kernels only; callers must not mutate the result.
func (m *Sparse) get(row, col int) *big.Int {
	return m.data[row][col]
}

// Set stores a copy of v at (row, col), overwriting any previous entry.
// An explicit zero is stored as an entry (it counts in Len and BoundingBox,
// not in NNZ, and is never serialized).
//
// Errors:
//   - ErrOutOfRange for indices outside the shape.
//   - ErrNilValue when v is nil.
//
// Complexity: O(1) average.
func (m *Sparse) Set(row, col int, v *big.Int) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	if v == nil {
		return sparseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.put(row, col, new(big.Int).Set(v))

	return nil
}

// SetInt64 is a convenience wrapper around Set for machine-sized values.
func (m *Sparse) SetInt64(row, col int, v int64) error {
	return m.Set(row, col, big.NewInt(v))
}

// put stores v (already owned by m) without bounds checks.
func (m *Sparse) put(row, col int, v *big.Int) {
	rowMap, ok := m.data[row]
	if !ok {
		rowMap = make(map[int]*big.Int)
		m.data[row] = rowMap
	}
	rowMap[col] = v
}

// Unset removes the entry at (row, col) so that it reads as an implicit 0.
// Removing an absent entry is a no-op.
// Errors: ErrOutOfRange for indices outside the shape.
func (m *Sparse) Unset(row, col int) error {
	if err := m.checkIndex(ctxUnset, row, col); err != nil {
		return err
	}
	if rowMap, ok := m.data[row]; ok {
		delete(rowMap, col)
		if len(rowMap) == 0 {
			delete(m.data, row) // keep the "no empty row map" invariant
		}
	}

	return nil
}

// Len returns the number of stored entries, explicit zeros included.
func (m *Sparse) Len() int {
	n := 0
	for _, rowMap := range m.data {
		n += len(rowMap)
	}

	return n
}

// NNZ returns the number of stored non-zero entries.
func (m *Sparse) NNZ() int {
	n := 0
	for _, rowMap := range m.data {
		for _, v := range rowMap {
			if v.Sign() != 0 {
				n++
			}
		}
	}

	return n
}

// sortedKeys returns the keys of a map in ascending order.
func sortedKeys[V any](in map[int]V) []int {
	keys := make([]int, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Entries returns every stored non-zero entry in row-major, then column order.
// Values are copies.
// Complexity: O(nnz·log nnz).
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	m.each(func(i, j int, v *big.Int) {
		if v.Sign() != 0 {
			out = append(out, Entry{Row: i, Col: j, Value: new(big.Int).Set(v)})
		}
	})

	return out
}

// each visits stored entries (zeros included) in row-major, then column order.
// The callback receives the stored pointer and must not mutate it.
func (m *Sparse) each(fn func(i, j int, v *big.Int)) {
	for _, i := range sortedKeys(m.data) {
		rowMap := m.data[i]
		for _, j := range sortedKeys(rowMap) {
			fn(i, j, rowMap[j])
		}
	}
}

// BoundingBox returns the tight bounding box of the stored coordinates:
// (max row + 1, max col + 1), explicit zeros included. ok is false when the
// matrix stores nothing.
func (m *Sparse) BoundingBox() (rows, cols int, ok bool) {
	for i, rowMap := range m.data {
		if i+1 > rows {
			rows = i + 1
		}
		for j := range rowMap {
			if j+1 > cols {
				cols = j + 1
			}
		}
		ok = true
	}

	return rows, cols, ok
}

// Clone returns a deep copy (shape, entries and explicit zeros).
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	out := &Sparse{r: m.r, c: m.c, data: make(map[int]map[int]*big.Int, len(m.data))}
	for i, rowMap := range m.data {
		cp := make(map[int]*big.Int, len(rowMap))
		for j, v := range rowMap {
			cp[j] = new(big.Int).Set(v)
		}
		out.data[i] = cp
	}

	return out
}

// Equal reports whether m and other have the same shape and the same non-zero
// entries. Explicit zeros are ignored on both sides. Two nil matrices are equal.
func (m *Sparse) Equal(other *Sparse) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}

	return containsNonZeros(m, other) && containsNonZeros(other, m)
}

// containsNonZeros reports whether every non-zero of a appears with the same value in b.
func containsNonZeros(a, b *Sparse) bool {
	for i, rowMap := range a.data {
		for j, v := range rowMap {
			if v.Sign() == 0 {
				continue
			}
			w := b.get(i, j)
			if w == nil || w.Cmp(v) != 0 {
				return false
			}
		}
	}

	return true
}

// String renders the non-zero entries for debugging, e.g. "3x3{(0,0)=1 (2,1)=-4}".
func (m *Sparse) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d{", m.r, m.c)
	first := true
	m.each(func(i, j int, v *big.Int) {
		if v.Sign() == 0 {
			return
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "(%d,%d)=%s", i, j, v.String())
	})
	sb.WriteByte('}')

	return sb.String()
}
