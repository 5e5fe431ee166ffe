package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/matrix"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparsecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith("", map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadWith_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
output_dir: out
shape_policy: bounding-box
reject_duplicates: true
`)

	cfg, err := LoadWith(path, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Config{
		LogLevel:         "debug",
		OutputDir:        "out",
		ShapePolicy:      "bounding-box",
		RejectDuplicates: true,
	}, cfg)

	cfg, err = LoadWith(path, map[string]string{
		"SPARSECALC_LOG_LEVEL":            "error",
		"SPARSECALC_LEGACY_COLUMN_HEADER": "true",
		"LOG_LEVEL":                       "warn", // unprefixed: ignored
	})
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.True(t, cfg.LegacyColumnHeader)
	require.Equal(t, "out", cfg.OutputDir, "file value survives when env is silent")
}

func TestLoadWith_EmptyFile(t *testing.T) {
	cfg, err := LoadWith(writeConfig(t, ""), map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadWith_Errors(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = LoadWith(writeConfig(t, "log_levle: debug\n"), map[string]string{})
	require.ErrorContains(t, err, "log_levle")

	_, err = LoadWith("", map[string]string{"SPARSECALC_SHAPE_POLICY": "dense"})
	require.ErrorContains(t, err, "dense")

	_, err = LoadWith("", map[string]string{"SPARSECALC_LOG_LEVEL": "loud"})
	require.ErrorContains(t, err, "loud")

	_, err = LoadWith("", map[string]string{"SPARSECALC_REJECT_DUPLICATES": "maybe"})
	require.Error(t, err)
}

func TestMatrixOptions(t *testing.T) {
	cfg := Config{ShapePolicy: "bounding-box", RejectDuplicates: true, LegacyColumnHeader: true}
	opts, err := cfg.MatrixOptions()
	require.NoError(t, err)

	o := matrix.NewMatrixOptions(opts...)
	require.Equal(t, matrix.ShapeBoundingBox, o.ShapePolicy())
	require.True(t, o.RejectDuplicates())
	require.True(t, o.LegacyColumnHeader())

	opts, err = Default().MatrixOptions()
	require.NoError(t, err)
	require.Equal(t, matrix.NewMatrixOptions(), matrix.NewMatrixOptions(opts...))
}
