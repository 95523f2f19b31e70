// Package cli wires the loan comparison engine into cobra subcommands.
package cli

import (
	"fmt"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootConfig carries the persistent flag values shared by every subcommand.
type RootConfig struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string

	Version string
}

// Load reads the scenario configuration and initializes the logger from it,
// honoring the CLI overrides.
func (rc *RootConfig) Load() (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadConfiguration(rc.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", rc.ConfigPath, err)
	}

	logger, err := initializeLogger(conf.Logging, rc.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return conf, logger, nil
}

// Format resolves the output format from the flag override and the loaded
// configuration.
func (rc *RootConfig) Format(conf *config.Configuration) (string, error) {
	format := conf.Output.Format
	if rc.OutputFormat != "" {
		format = rc.OutputFormat
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := output.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// New constructs the root command with every subcommand attached.
func New(version string) *cobra.Command {
	rc := &RootConfig{Version: version}

	root := &cobra.Command{
		Use:           "loan-compare",
		Short:         "Compare mortgage scenarios, amortization schedules, and reverse mortgage sizing",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&rc.ConfigPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&rc.OutputFormat, "output-format", "", "output format override: pretty, csv")

	root.AddCommand(
		newCompareCmd(rc),
		newAmortizeCmd(rc),
		newHECMCmd(rc),
		newBreakevenCmd(rc),
		newScenarioCmd(rc),
		newServeCmd(rc),
	)

	return root
}
