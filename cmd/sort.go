package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sortxml/sortxml/internal/service"
)

func sortCmd() *cobra.Command {
	var configFile string
	var order []string
	var noBackup bool

	command := &cobra.Command{
		Use:   "sort <file>...",
		Short: "Sort the elements of XML files into canonical order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(args, configFile, order, noBackup)
		},
	}

	command.Flags().StringVarP(&configFile, "config", "c", "",
		"path to the configuration file (defaults to .sortxml.yaml)")
	command.Flags().StringSliceVar(&order, "order", nil,
		"element names in canonical order, overriding the configured sort order")
	command.Flags().BoolVar(&noBackup, "no-backup", false,
		"do not create backup files before rewriting")

	return command
}

func runSort(files []string, configFile string, order []string, noBackup bool) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if len(order) > 0 {
		cfg.SortOrder = order
	}
	if noBackup {
		cfg.Backup.Enabled = false
	}

	svc := service.New(cfg, service.NewLogger(os.Stderr))
	for _, f := range files {
		if err := svc.SortFile(f); err != nil {
			return err
		}
	}
	return nil
}
