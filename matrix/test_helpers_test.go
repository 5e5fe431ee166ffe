// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by the tests.
//   • Keep fixtures spelled as plain int64 coordinates for readability.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// cells is a readable fixture: {row, col} → value.
type cells map[[2]int]int64

// MustSparse builds a rows×cols matrix from cells or fails the test.
func MustSparse(t testing.TB, rows, cols int, c cells) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for rc, v := range c {
		require.NoError(t, m.SetInt64(rc[0], rc[1], v))
	}

	return m
}

// MustParse parses text or fails the test.
func MustParse(t testing.TB, text string, opts ...matrix.Option) *matrix.Sparse {
	t.Helper()
	m, err := matrix.ParseString(text, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) as int64 or fails the test.
func MustAt(t testing.TB, m *matrix.Sparse, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	require.True(t, v.IsInt64(), "value at (%d,%d) does not fit int64: %s", i, j, v)

	return v.Int64()
}

// NonZeros flattens the stored non-zeros of m into cells.
func NonZeros(t testing.TB, m *matrix.Sparse) cells {
	t.Helper()
	out := cells{}
	for _, e := range m.Entries() {
		require.True(t, e.Value.IsInt64())
		out[[2]int{e.Row, e.Col}] = e.Value.Int64()
	}

	return out
}

// RequireCells asserts shape and exact non-zero content of m.
func RequireCells(t testing.TB, m *matrix.Sparse, rows, cols int, want cells) {
	t.Helper()
	require.NotNil(t, m)
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c}, "shape")
	require.Equal(t, want, NonZeros(t, m))
}

// RandSparse fills a rows×cols matrix with roughly density·rows·cols values in
// [-9, 9] using a fixed seed.
func RandSparse(t testing.TB, rows, cols int, density float64, seed int64) *matrix.Sparse {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSparse(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				require.NoError(t, m.SetInt64(i, j, int64(rng.Intn(19)-9)))
			}
		}
	}

	return m
}

// denseProduct is the textbook triple loop, used as an oracle for Mul.
func denseProduct(t testing.TB, a, b *matrix.Sparse) cells {
	t.Helper()
	out := cells{}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := new(big.Int)
			for k := 0; k < a.Cols(); k++ {
				av, err := a.At(i, k)
				require.NoError(t, err)
				bv, err := b.At(k, j)
				require.NoError(t, err)
				sum.Add(sum, new(big.Int).Mul(av, bv))
			}
			if sum.Sign() != 0 {
				out[[2]int{i, j}] = sum.Int64()
			}
		}
	}

	return out
}
