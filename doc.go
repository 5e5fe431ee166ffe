// Package sparsecalc reads two sparse integer matrices from text files,
// adds, subtracts or multiplies them, and writes the result back in the
// same format.
//
// The work is split across a small set of packages:
//
//	matrix/             sparse storage, parser, arithmetic and serializer
//	internal/driver/    one end-to-end run: read, compute, write atomically
//	internal/config/    defaults, YAML file and SPARSECALC_* environment
//	internal/logging/   slog text logger used by the command line
//	cmd/sparsecalc/     cobra CLI: run, prompt, show, version
//
// A matrix file looks like:
//
//	rows=3
//	cols=3
//	(0, 0, 1)
//	(2, 1, -4)
//
// Every coordinate not listed is zero. Values are arbitrary-precision
// integers.
//
//	go install github.com/katalvlaran/sparsecalc/cmd/sparsecalc@latest
//	sparsecalc run multiply a.txt b.txt -o product.txt
package sparsecalc
