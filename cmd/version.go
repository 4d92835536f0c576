package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags.
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sortxml",
		Run: func(command *cobra.Command, args []string) {
			fmt.Println("sortxml " + version)
		},
	}
}
