// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/matrix"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Check a matrix file and print it in canonical form",
		Long: `Parse a matrix file with the configured options, print its shape and
number of non-zero entries, then the canonical serialization (sorted entries,
zeros dropped).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.ReadFile(args[0], a.opts...)
			if err != nil {
				return err
			}
			text, err := matrix.Format(m, a.opts...)
			if err != nil {
				return err
			}

			rows, cols := m.Shape()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s: %dx%d, %d non-zero\n", args[0], rows, cols, m.NNZ())
			fmt.Fprint(out, text)

			return nil
		},
	}
}
