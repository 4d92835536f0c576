package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sortxml/sortxml/internal/service"
)

// maxReportEntries caps the rendered report for pathological batch runs.
const maxReportEntries = 500

func verifyCmd() *cobra.Command {
	var configFile string
	var order []string
	var onUnordered string
	var violationFile string

	command := &cobra.Command{
		Use:   "verify <file|url>...",
		Short: "Verify that XML files are in canonical element order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, configFile, order, onUnordered, violationFile)
		},
	}

	command.Flags().StringVarP(&configFile, "config", "c", "",
		"path to the configuration file (defaults to .sortxml.yaml)")
	command.Flags().StringSliceVar(&order, "order", nil,
		"element names in canonical order, overriding the configured sort order")
	command.Flags().StringVar(&onUnordered, "on-unordered", "",
		"what to do with unordered documents: warn, sort or stop")
	command.Flags().StringVar(&violationFile, "violation-file", "",
		"write an XML violation report to this path")

	return command
}

func runVerify(cmd *cobra.Command, targets []string,
	configFile string, order []string, onUnordered, violationFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if len(order) > 0 {
		cfg.SortOrder = order
	}
	if onUnordered != "" {
		policy, err := service.ParsePolicy(onUnordered)
		if err != nil {
			return err
		}
		cfg.Verify.OnUnordered = string(policy)
	}
	if violationFile != "" {
		cfg.Verify.ViolationFile = violationFile
	}

	svc := service.New(cfg, service.NewLogger(os.Stderr))
	report := svc.VerifyFiles(targets)
	service.RenderText(cmd.OutOrStdout(), report, maxReportEntries)
	return svc.ApplyPolicy(report)
}
