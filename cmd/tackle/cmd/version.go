package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrimthurs/Tackle/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "tackle v%s\n", info.Version)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
		},
	}
}
