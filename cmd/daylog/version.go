package daylog

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(out, "daylog (unknown build)")
		return
	}
	fmt.Fprintf(out, "daylog %s\n", info.Main.Version)
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time":
			fmt.Fprintf(out, "  %s: %s\n", s.Key, s.Value)
		}
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
