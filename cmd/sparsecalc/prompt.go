// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/driver"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for the input files, operation and output name interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := driver.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runRequest(cmd, a, req)
		},
	}
}
