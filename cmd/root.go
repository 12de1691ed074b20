// Package cmd implements the curioso command line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/curioso-agent/curioso/lib/config"
	"github.com/curioso-agent/curioso/lib/display"
	"github.com/curioso-agent/curioso/lib/format"
	"github.com/curioso-agent/curioso/lib/probe"
	"github.com/curioso-agent/curioso/probestate"
)

var cfgFile string //nolint:gochecknoglobals // Cobra flag target

// rootCmd represents the base command when called without any subcommands.
// Running it probes the host and writes the JSON report to stdout.
var rootCmd = &cobra.Command{ //nolint:gochecknoglobals // Cobra root command
	Use:          "curioso",
	Version:      probe.Version,
	Short:        "Probe the host operating system",
	Long:         "curioso probes the host operating system and prints a JSON report of system facts to stdout.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runProbe,
}

// RootCmd returns the root command for execution by main.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() { //nolint:gochecknoinits // Cobra command wiring
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/curioso/curioso.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.Flags().Bool("compact", false, "Emit the report as a single JSON line")

	cobra.CheckErr(viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")))
	cobra.CheckErr(viper.BindPFlag("compact_output", rootCmd.Flags().Lookup("compact")))

	config.SetDefaultConfigValues()
}

// runProbe gathers the host facts, serializes them and writes exactly one
// JSON object to stdout. Logging goes to stderr so stdout stays clean.
func runProbe(cmd *cobra.Command, _ []string) error {
	config.SetupSharedState()
	initLogger()

	display.Startup()

	ctx, cancel := context.WithTimeout(cmd.Context(), probestate.State.ProbeTimeout)
	defer cancel()

	report, err := probe.Probe(ctx)
	if err != nil {
		probestate.ErrorLogger.Error("Probe failed", "error", err)

		return fmt.Errorf("curioso: %w", err)
	}

	out, err := serialize(report)
	if err != nil {
		probestate.ErrorLogger.Error("Failed to serialize report", "error", err)

		return fmt.Errorf("curioso: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	display.Completed(report)

	return nil
}

func serialize(report *probe.Report) (string, error) {
	if probestate.State.CompactOutput {
		return format.Serialize(report)
	}

	return format.SerializePretty(report)
}

// initLogger raises the logging level when debug mode is enabled.
func initLogger() {
	if probestate.State.Debug {
		probestate.Logger.SetLevel(log.DebugLevel)
		probestate.Logger.SetReportCaller(true)
	} else {
		probestate.Logger.SetLevel(log.InfoLevel)
	}
}
