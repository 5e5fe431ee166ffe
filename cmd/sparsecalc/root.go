// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/config"
	"github.com/katalvlaran/sparsecalc/internal/driver"
	"github.com/katalvlaran/sparsecalc/internal/logging"
	"github.com/katalvlaran/sparsecalc/matrix"
)

// app is the state shared by subcommands, filled in by the root PersistentPreRunE.
type app struct {
	logOut io.Writer
	cfg    config.Config
	log    *slog.Logger
	opts   []matrix.Option
	driver *driver.Driver
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	rootCmd := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Add, subtract or multiply sparse matrix files",
		Long: `sparsecalc reads two matrices in the sparse text format

  rows=<int>
  cols=<int>
  (<row>, <col>, <value>)
  ...

applies add, subtract or multiply, and writes the result in the same format.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("shape-policy", "", "Where the shape comes from: declared or bounding-box")
	rootCmd.PersistentFlags().Bool("legacy-cols", false, "Write cols=<cols-1> headers")
	rootCmd.PersistentFlags().Bool("reject-duplicates", false, "Fail on repeated coordinates")

	rootCmd.AddCommand(
		newRunCmd(a),
		newPromptCmd(a),
		newShowCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup resolves config (file → env → flags) and builds the logger and driver.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("shape-policy") {
		cfg.ShapePolicy, _ = flags.GetString("shape-policy")
	}
	if flags.Changed("legacy-cols") {
		cfg.LegacyColumnHeader, _ = flags.GetBool("legacy-cols")
	}
	if flags.Changed("reject-duplicates") {
		cfg.RejectDuplicates, _ = flags.GetBool("reject-duplicates")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.MatrixOptions()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.opts = opts
	a.log = logging.NewLogger(cfg.LogLevel, a.logOut)
	a.driver = driver.New(a.log, cfg.OutputDir, opts...)
	a.log.Debug("config resolved",
		"config", path,
		"shape_policy", cfg.ShapePolicy,
		"legacy_cols", cfg.LegacyColumnHeader,
		"reject_duplicates", cfg.RejectDuplicates,
	)

	return nil
}
