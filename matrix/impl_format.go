// SPDX-License-Identifier: MIT
// Package matrix - serializer for the sparse coordinate format.
//
// Output:
//
//	rows=<rows>
//	cols=<cols>
//	(i, j, value)      one line per stored non-zero, row-major then column order
//
// Behavior highlights:
//   - Zero-valued entries (explicit or computed) are never written.
//   - The header carries the explicit shape; a matrix without entries writes the
//     header only.
//   - WithLegacyColumnHeader writes cols-1, matching legacy files.
//   - WriteFile is all-or-nothing: a temp file in the target directory is
//     renamed into place only after a complete, flushed write.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

const (
	opWrite     = "Write"
	opWriteFile = "WriteFile"

	// outputPerm is applied with Chmod, so it is exact and the umask does not apply.
	outputPerm os.FileMode = 0o644
)

// Write serializes m to w.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrEmptyMatrix under WithLegacyColumnHeader when m has no columns.
//   - Any write error from w, wrapped.
//
// Complexity:
//   - Time O(nnz·log nnz) for the ordered walk.
func Write(w io.Writer, m *Sparse, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opWrite, err)
	}
	o := gatherOptions(opts...)

	cols := m.c
	if o.legacyColumnHeader {
		if cols == 0 {
			return matrixErrorf(opWrite, fmt.Errorf("legacy cols header: %w", ErrEmptyMatrix))
		}
		cols-- // legacy header: max column index, not the count
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s=%d\n%s=%d\n", headerRows, m.r, headerCols, cols)
	m.each(func(i, j int, v *big.Int) {
		if v.Sign() != 0 {
			fmt.Fprintf(bw, "%s%d, %d, %s%s\n", entryOpen, i, j, v.String(), entryClose)
		}
	})
	// bufio.Writer latches the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return matrixErrorf(opWrite, err)
	}

	return nil
}

// Format returns the serialized text of m.
func Format(m *Sparse, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, m, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// WriteFile serializes m into path atomically.
// The text is rendered in memory first, so format errors never touch the disk;
// then a temp file next to path is written, synced and renamed over path.
// On any failure the temp file is removed and path is left untouched.
func WriteFile(path string, m *Sparse, opts ...Option) (err error) {
	text, err := Format(m, opts...)
	if err != nil {
		return matrixErrorf(opWriteFile, err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if err = tmp.Chmod(outputPerm); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if err = tmp.Close(); err != nil {
		return matrixErrorf(opWriteFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return matrixErrorf(opWriteFile, err)
	}

	return nil
}
