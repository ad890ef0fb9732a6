// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "feedmill.app/internal/cli"

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"feedmill.app/internal/version"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show build information",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			info(cmd.OutOrStdout(), version.New())
		},
	}
}

func info(w io.Writer, v version.Info) {
	fmt.Fprintln(w, "Version:", v.Version())
	if u := v.VersionURL(); u != "" {
		fmt.Fprintln(w, "Release:", u)
	}
	fmt.Fprintln(w, "Commit:", v.Commit())
	if u := v.CommitURL(); u != "" {
		fmt.Fprintln(w, "Commit URL:", u)
	}
	fmt.Fprintln(w, "Build Date:", v.BuildDate())
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Compiler:", runtime.Compiler)
	fmt.Fprintln(w, "Arch:", runtime.GOARCH)
	fmt.Fprintln(w, "OS:", runtime.GOOS)
}
