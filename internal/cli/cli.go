// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "feedmill.app/internal/cli"

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"feedmill.app/internal/cli/logger"
	"feedmill.app/internal/config"
	"feedmill.app/internal/version"
)

type rootFlags struct {
	configFile string
	configYAML string
	debugMode  bool

	logCloser io.Closer
}

// NewCommand returns the root command with all subcommands attached.
func NewCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:     "feedmill",
		Short:   "feedmill converts RSS, Atom, JSON Feed and HTML pages into one feed format.",
		Version: version.Version,

		PersistentPreRunE: flags.persistentPreRunE,

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if flags.logCloser != nil {
				flags.logCloser.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configFile, "config-file", "c", "",
		"Path to .env configuration file")
	cmd.PersistentFlags().StringVarP(&flags.configYAML, "config-yaml", "", "",
		"Path to YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.debugMode, "debug", "d", false,
		"Show debug logs")

	cmd.AddCommand(newConfigDumpCmd())
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newParseCmd())
	return cmd
}

func newConfigDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-dump",
		Short: "Print parsed configuration values",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.Opts)
		},
	}
}

func (self *rootFlags) persistentPreRunE(cmd *cobra.Command, args []string,
) error {
	// Don't show usage on app errors.
	// https://github.com/spf13/cobra/issues/340#issuecomment-378726225
	cmd.SilenceUsage = true

	if err := config.LoadYAML(self.configYAML, self.configFile); err != nil {
		return err
	} else if self.debugMode {
		config.Opts.SetLogLevel("debug")
	}

	closer, err := logger.InitializeDefaultLogger()
	if err != nil {
		return err
	}
	self.logCloser = closer
	return nil
}

func Execute() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
