// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/driver"
	"github.com/katalvlaran/sparsecalc/matrix"
)

func opNames() string {
	names := make([]string, 0, 3)
	for _, op := range matrix.Ops() {
		names = append(names, op.String())
	}
	return strings.Join(names, ", ")
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <operation> <left> <right>",
		Short: "Apply an operation to two matrix files",
		Long: fmt.Sprintf(`Apply an operation (%s) to two matrix files.

The result is written to --output, or to matrix_<operation>.txt (inside the
configured output_dir, if any). Nothing is written when the run fails.`, opNames()),
		Example: "  sparsecalc run multiply a.txt b.txt -o product.txt",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			req := driver.Request{
				Operation: args[0],
				Left:      args[1],
				Right:     args[2],
				Output:    output,
			}
			return runRequest(cmd, a, req)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default matrix_<operation>.txt)")

	return cmd
}

// runRequest executes req and reports the outcome on stdout.
func runRequest(cmd *cobra.Command, a *app, req driver.Request) error {
	res, err := a.driver.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Matrix %s: %s\n", res.Op, res.Output)

	return nil
}
