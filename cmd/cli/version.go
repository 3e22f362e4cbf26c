package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"runtime"
)

// Set with -ldflags "-X recipehub/cmd/cli.Version=..." at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func FullVersionInfo() string {
	return fmt.Sprintf("recipehub %s\ncommit: %s\nbuilt: %s\ngo: %s\n", Version, Commit, BuildDate, runtime.Version())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), FullVersionInfo())
	},
}
