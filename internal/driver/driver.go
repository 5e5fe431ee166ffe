// SPDX-License-Identifier: MIT
// Package driver wires the matrix codec and engine into one file-to-file run:
// read two inputs, compute, write the result.
//
// Every failure is terminal for the run and leaves no output file behind:
// the result is fully computed and serialized before anything touches disk,
// and matrix.WriteFile replaces the target atomically.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/sparsecalc/matrix"
)

// DefaultOutputPattern is the output file name used when none is given.
const DefaultOutputPattern = "matrix_%s.txt"

// DefaultOutput returns the default output name for op, e.g. "matrix_add.txt".
func DefaultOutput(op matrix.Op) string {
	return fmt.Sprintf(DefaultOutputPattern, op)
}

// Request describes one run.
type Request struct {
	Left      string // path of the first operand
	Right     string // path of the second operand
	Operation string // add, subtract or multiply
	Output    string // result path; empty selects DefaultOutput
}

// Result summarizes a successful run.
type Result struct {
	Op     matrix.Op
	Output string // path the result was written to
	Rows   int
	Cols   int
	NNZ    int // non-zero entries written
}

// Driver runs requests with a fixed codec configuration.
type Driver struct {
	log       *slog.Logger
	outputDir string
	opts      []matrix.Option
}

// New returns a Driver. outputDir prefixes default output names only; opts
// are applied to both parsing and serialization.
func New(log *slog.Logger, outputDir string, opts ...matrix.Option) *Driver {
	if log == nil {
		log = slog.Default()
	}

	return &Driver{log: log, outputDir: outputDir, opts: opts}
}

// OutputPath resolves where a request for op writes its result.
func (d *Driver) OutputPath(req Request, op matrix.Op) string {
	if req.Output != "" {
		return req.Output
	}
	name := DefaultOutput(op)
	if d.outputDir == "" {
		return name
	}

	return filepath.Join(d.outputDir, name)
}

// Run executes req: ParseOp → ReadFile ×2 → Compute → WriteFile.
// ctx is checked between stages.
func (d *Driver) Run(ctx context.Context, req Request) (Result, error) {
	op, err := matrix.ParseOp(req.Operation)
	if err != nil {
		return Result{}, err
	}
	log := d.log.With("op", op.String())

	left, err := d.read(ctx, log, req.Left)
	if err != nil {
		return Result{}, err
	}
	right, err := d.read(ctx, log, req.Right)
	if err != nil {
		return Result{}, err
	}

	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	res, err := matrix.Compute(left, right, op)
	if err != nil {
		return Result{}, err
	}
	rows, cols := res.Shape()
	log.Debug("computed", "rows", rows, "cols", cols, "nnz", res.NNZ())

	out := d.OutputPath(req, op)
	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	if err = matrix.WriteFile(out, res, d.opts...); err != nil {
		return Result{}, err
	}
	log.Info("result written", "path", out, "rows", rows, "cols", cols)

	return Result{Op: op, Output: out, Rows: rows, Cols: cols, NNZ: res.NNZ()}, nil
}

// read parses one operand file.
func (d *Driver) read(ctx context.Context, log *slog.Logger, path string) (*matrix.Sparse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := matrix.ReadFile(path, d.opts...)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Shape()
	log.Debug("operand loaded", "path", path, "rows", rows, "cols", cols, "entries", m.Len())

	return m, nil
}
