package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/logging"
	"github.com/katalvlaran/sparsecalc/matrix"
)

const (
	textA = "rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 4)\n"
	textB = "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 1)\n"
	textC = "rows=3\ncols=1\n(2, 0, 5)\n"
)

// fixture writes name → body files into a temp dir and returns the dir.
func fixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

func TestRun_AddAndMultiply(t *testing.T) {
	dir := fixture(t, map[string]string{"a.txt": textA, "b.txt": textB})
	d := New(logging.Discard(), "")

	for _, tc := range []struct {
		op   string
		want string
	}{
		{"add", "rows=2\ncols=2\n(0, 0, 2)\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 5)\n"},
		{"multiply", textA},
		{"subtract", "rows=2\ncols=2\n(0, 1, 2)\n(1, 0, 3)\n(1, 1, 3)\n"},
	} {
		t.Run(tc.op, func(t *testing.T) {
			out := filepath.Join(dir, tc.op+".out")
			res, err := d.Run(context.Background(), Request{
				Left:      filepath.Join(dir, "a.txt"),
				Right:     filepath.Join(dir, "b.txt"),
				Operation: tc.op,
				Output:    out,
			})
			require.NoError(t, err)
			require.Equal(t, out, res.Output)
			require.Equal(t, 2, res.Rows)
			require.Equal(t, 2, res.Cols)
			require.Equal(t, tc.want, readOutput(t, out))
		})
	}
}

func TestRun_DefaultOutputInOutputDir(t *testing.T) {
	dir := fixture(t, map[string]string{"a.txt": textA, "b.txt": textB})
	outDir := t.TempDir()
	d := New(logging.Discard(), outDir)

	res, err := d.Run(context.Background(), Request{
		Left:      filepath.Join(dir, "a.txt"),
		Right:     filepath.Join(dir, "b.txt"),
		Operation: "Multiply",
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outDir, "matrix_multiply.txt"), res.Output)
	require.Equal(t, matrix.OpMultiply, res.Op)
	require.Equal(t, 4, res.NNZ)
	require.FileExists(t, res.Output)
}

func TestDefaultOutput(t *testing.T) {
	require.Equal(t, "matrix_add.txt", DefaultOutput(matrix.OpAdd))
	require.Equal(t, "matrix_subtract.txt", DefaultOutput(matrix.OpSubtract))

	d := New(nil, "")
	require.Equal(t, "matrix_add.txt", d.OutputPath(Request{}, matrix.OpAdd))
	require.Equal(t, "x.txt", d.OutputPath(Request{Output: "x.txt"}, matrix.OpAdd))
}

func TestRun_FailuresLeaveNoOutput(t *testing.T) {
	dir := fixture(t, map[string]string{
		"a.txt":   textA,
		"c.txt":   textC,
		"bad.txt": "rows=2\ncols=2\n(1,2)\n",
	})
	d := New(logging.Discard(), "")
	path := func(name string) string { return filepath.Join(dir, name) }

	for _, tc := range []struct {
		name string
		req  Request
		want error
	}{
		{"invalid operation", Request{Left: path("a.txt"), Right: path("a.txt"), Operation: "divide"}, matrix.ErrInvalidOperation},
		{"dimension mismatch add", Request{Left: path("a.txt"), Right: path("c.txt"), Operation: "add"}, matrix.ErrDimensionMismatch},
		{"dimension mismatch multiply", Request{Left: path("c.txt"), Right: path("a.txt"), Operation: "multiply"}, matrix.ErrDimensionMismatch},
		{"format error", Request{Left: path("a.txt"), Right: path("bad.txt"), Operation: "add"}, matrix.ErrFormat},
		{"missing input", Request{Left: path("nope.txt"), Right: path("a.txt"), Operation: "add"}, fs.ErrNotExist},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Output = path(tc.name + ".out")
			_, err := d.Run(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.want)
			require.NoFileExists(t, tc.req.Output)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := fixture(t, map[string]string{"a.txt": textA})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := filepath.Join(dir, "out.txt")
	_, err := New(logging.Discard(), "").Run(ctx, Request{
		Left:      filepath.Join(dir, "a.txt"),
		Right:     filepath.Join(dir, "a.txt"),
		Operation: "add",
		Output:    out,
	})
	require.ErrorIs(t, err, context.Canceled)
	require.NoFileExists(t, out)
}

func TestRun_LegacyOptions(t *testing.T) {
	// Header lies about the shape; bounding-box policy ignores it.
	dir := fixture(t, map[string]string{
		"a.txt": "rows=7\ncols=7\n(0, 0, 1)\n(1, 2, 2)\n",
		"b.txt": "rows=1\ncols=1\n(1, 2, 3)\n(0, 0, 0)\n",
	})
	d := New(logging.Discard(), "",
		matrix.WithShapePolicy(matrix.ShapeBoundingBox),
		matrix.WithLegacyColumnHeader(),
	)
	out := filepath.Join(dir, "out.txt")
	res, err := d.Run(context.Background(), Request{
		Left:      filepath.Join(dir, "a.txt"),
		Right:     filepath.Join(dir, "b.txt"),
		Operation: "add",
		Output:    out,
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.Cols)
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 1)\n(1, 2, 5)\n", readOutput(t, out))
}
