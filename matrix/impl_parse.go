// SPDX-License-Identifier: MIT
// Package matrix - text parser for the sparse coordinate format.
//
// Format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Behavior highlights:
//   - Whitespace around tokens and separators is tolerated; blank entry lines are skipped.
//   - A repeated coordinate overwrites the earlier one (last occurrence wins)
//     unless WithRejectDuplicates is set.
//   - The shape comes from the header (ShapeDeclared) or from the stored
//     coordinates (ShapeBoundingBox), see options.go.
//   - Read failures of the source are returned wrapped, never masked.
//
// Errors:
//   - ErrFormat (wrapped with "line N") for malformed headers or entries.
//   - ErrBadShape for a negative declared dimension (ShapeDeclared only; the
//     bounding-box policy requires an integer header and ignores its value).
//   - Under WithLegacyColumnHeader the declared cols is the last column index,
//     so the parsed shape has cols+1 columns.
//   - ErrOutOfRange for an entry outside the declared shape.
//   - ErrDuplicateEntry under WithRejectDuplicates.
//   - ErrEmptyMatrix under ShapeBoundingBox when no entry is listed.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
)

const (
	opParse    = "Parse"
	opReadFile = "ReadFile"

	headerRows = "rows"
	headerCols = "cols"

	entryOpen  = "("
	entryClose = ")"
	entrySep   = ","
	entryArity = 3

	// maxLineBytes bounds a single input line; entries are short, but big
	// values can be long, so the bufio default of 64 KiB is raised.
	maxLineBytes = 1 << 20
)

// lineErrorf tags err with the 1-based line number it was detected on.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// Parse reads one sparse matrix from r.
// Implementation:
//   - Stage 1: read the rows=/cols= header (lines 1 and 2).
//   - Stage 2: parse every non-blank remaining line as an entry triple.
//   - Stage 3: settle the shape per the shape policy and build the *Sparse.
//
// Complexity:
//   - Time O(L) over input bytes, Space O(entries).
func Parse(r io.Reader, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	rows, err := readHeader(sc, 1, headerRows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	cols, err := readHeader(sc, 2, headerCols)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	if o.shapePolicy == ShapeDeclared {
		if rows < 0 {
			return nil, matrixErrorf(opParse, lineErrorf(1, fmt.Errorf("%s=%d: %w", headerRows, rows, ErrBadShape)))
		}
		if cols < 0 {
			return nil, matrixErrorf(opParse, lineErrorf(2, fmt.Errorf("%s=%d: %w", headerCols, cols, ErrBadShape)))
		}
		if o.legacyColumnHeader {
			cols++ // legacy header holds the last column index
		}
	}

	data := make(map[int]map[int]*big.Int)
	maxRow, maxCol := -1, -1
	for line := 3; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, perr := parseEntry(text)
		if perr != nil {
			return nil, matrixErrorf(opParse, lineErrorf(line, perr))
		}
		if o.shapePolicy == ShapeDeclared && (e.Row >= rows || e.Col >= cols) {
			return nil, matrixErrorf(opParse, lineErrorf(line,
				fmt.Errorf("(%d,%d) outside %dx%d: %w", e.Row, e.Col, rows, cols, ErrOutOfRange)))
		}

		rowMap, ok := data[e.Row]
		if !ok {
			rowMap = make(map[int]*big.Int)
			data[e.Row] = rowMap
		}
		if _, dup := rowMap[e.Col]; dup && o.rejectDuplicates {
			return nil, matrixErrorf(opParse, lineErrorf(line,
				fmt.Errorf("(%d,%d): %w", e.Row, e.Col, ErrDuplicateEntry)))
		}
		rowMap[e.Col] = e.Value // last occurrence wins
		maxRow, maxCol = max(maxRow, e.Row), max(maxCol, e.Col)
	}
	if err = sc.Err(); err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	if o.shapePolicy == ShapeBoundingBox {
		if maxRow < 0 {
			return nil, matrixErrorf(opParse, ErrEmptyMatrix)
		}
		rows, cols = maxRow+1, maxCol+1
	}

	return &Sparse{r: rows, c: cols, data: data}, nil
}

// readHeader consumes one "<key>=<int>" line. The sign is checked by the
// caller because only the declared policy uses the value.
func readHeader(sc *bufio.Scanner, line int, key string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, lineErrorf(line, fmt.Errorf("missing %s= header: %w", key, ErrFormat))
	}
	name, value, found := strings.Cut(sc.Text(), "=")
	if !found || strings.TrimSpace(name) != key {
		return 0, lineErrorf(line, fmt.Errorf("want %s=<int>, got %q: %w", key, sc.Text(), ErrFormat))
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, lineErrorf(line, fmt.Errorf("%s=%q: %w", key, strings.TrimSpace(value), ErrFormat))
	}
	return n, nil
}

// parseEntry splits "(<row>, <col>, <value>)" into an Entry.
// text must already be trimmed.
func parseEntry(text string) (Entry, error) {
	if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) || len(text) < 2 {
		return Entry{}, fmt.Errorf("%q is not bracketed: %w", text, ErrFormat)
	}
	tokens := strings.Split(text[1:len(text)-1], entrySep)
	if len(tokens) != entryArity {
		return Entry{}, fmt.Errorf("%q has %d fields, want %d: %w", text, len(tokens), entryArity, ErrFormat)
	}

	row, err := parseIndex(tokens[0])
	if err != nil {
		return Entry{}, err
	}
	col, err := parseIndex(tokens[1])
	if err != nil {
		return Entry{}, err
	}
	raw := strings.TrimSpace(tokens[2])
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Entry{}, fmt.Errorf("value %q: %w", raw, ErrFormat)
	}

	return Entry{Row: row, Col: col, Value: v}, nil
}

// parseIndex parses a non-negative row/column token.
func parseIndex(tok string) (int, error) {
	raw := strings.TrimSpace(tok)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", raw, ErrFormat)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative index %d: %w", n, ErrFormat)
	}

	return n, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*Sparse, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ReadFile opens path and parses it.
// Open/read failures keep their os error (errors.Is(err, fs.ErrNotExist) works).
func ReadFile(path string, opts ...Option) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, matrixErrorf(opReadFile, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, matrixErrorf(opReadFile, fmt.Errorf("%s: %w", path, err))
	}

	return m, nil
}
