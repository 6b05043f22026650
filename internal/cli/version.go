package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags at build time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the reelforge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reelforge %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
