package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "sortxml",
		Short: "sortxml is a CLI utility to sort and verify the element order of XML files",
	}

	command.AddCommand(sortCmd())
	command.AddCommand(verifyCmd())
	command.AddCommand(versionCmd())

	return command
}

func Execute() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
