// Command cpustat prints aggregate host CPU time split between user
// and kernel mode.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danpilch/cpustat/pkg/clockticks"
	"github.com/danpilch/cpustat/pkg/cpustats"
	"github.com/danpilch/cpustat/pkg/crosscheck"
	"github.com/danpilch/cpustat/pkg/output"
)

var (
	flagFormat     string
	flagCrossCheck bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cpustat",
	Short: "Report aggregate user and system CPU time for this host",
	Long: `cpustat reads machine-wide CPU time accounting from the OS
(/proc/stat on Linux, Mach host_processor_info on macOS) and reports
how long the host has spent in user mode and in kernel mode since
boot.`,
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if flagVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ticks, err := clockticks.PerSecond()
	if err != nil {
		return fmt.Errorf("resolve clock ticks: %w", err)
	}
	logger.WithField("ticks_per_sec", ticks).Debug("Resolved scheduler tick frequency")

	stats, err := cpustats.Read()
	if err != nil {
		return fmt.Errorf("read cpu stats: %w", err)
	}

	formatter := output.NewFormatter(output.Format(flagFormat), cmd.OutOrStdout())
	if err := formatter.Render(stats, ticks); err != nil {
		return err
	}

	if flagCrossCheck {
		results, err := crosscheck.Run()
		if err != nil {
			logger.WithError(err).Warn("Cross-check failed")
			return err
		}
		if flagFormat == string(output.FormatJSON) {
			return crosscheck.ReportJSON(cmd.OutOrStdout(), results)
		}
		crosscheck.Report(cmd.OutOrStdout(), results)
	}

	return nil
}

func main() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", string(output.FormatTable), "output format: table, json, tsv")
	rootCmd.Flags().BoolVar(&flagCrossCheck, "crosscheck", false, "validate readings against an independent source")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
