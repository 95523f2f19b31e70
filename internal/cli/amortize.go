package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/pkg/amort"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/spf13/cobra"
)

func newAmortizeCmd(rc *RootConfig) *cobra.Command {
	var (
		scenarioName string
		startMonth   string
		extraMonthly float64
		extraAmount  float64
		extraAtMonth int
	)

	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print the month-by-month amortization schedule for one scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := rc.Load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			format, err := rc.Format(conf)
			if err != nil {
				return err
			}

			sc, err := selectScenario(conf, scenarioName)
			if err != nil {
				return err
			}

			scenario, err := sc.Build()
			if err != nil {
				return err
			}

			if startMonth != "" {
				if _, err := time.Parse(constants.DateTimeLayout, startMonth); err != nil {
					return fmt.Errorf("invalid start month %q, expected YYYY-MM", startMonth)
				}
			}

			extra := amort.Extra{
				Monthly: extraMonthly,
				Amount:  extraAmount,
				AtMonth: extraAtMonth,
			}
			schedule := amort.NewScheduleGenerator(logger).Generate(
				scenario.LoanAmount, scenario.NoteRate(), scenario.TermMonths(), extra)

			switch format {
			case constants.OutputFormatPretty:
				output.PrettySchedule(os.Stdout, sc.Name, schedule, startMonth)
			case constants.OutputFormatCSV:
				output.CsvSchedule(os.Stdout, schedule, startMonth)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioName, "scenario", "", "scenario name (defaults to the first configured scenario)")
	cmd.Flags().StringVar(&startMonth, "start-month", "", "label rows with calendar dates starting at YYYY-MM")
	cmd.Flags().Float64Var(&extraMonthly, "extra-monthly", 0, "constant extra principal payment per month")
	cmd.Flags().Float64Var(&extraAmount, "extra-amount", 0, "one-time extra principal payment amount")
	cmd.Flags().IntVar(&extraAtMonth, "extra-at-month", 0, "month index of the one-time extra payment")

	return cmd
}

func selectScenario(conf *config.Configuration, name string) (config.ScenarioConfig, error) {
	if len(conf.Scenarios) == 0 {
		return config.ScenarioConfig{}, fmt.Errorf("no scenarios configured")
	}
	if name == "" {
		return conf.Scenarios[0], nil
	}
	for _, sc := range conf.Scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return config.ScenarioConfig{}, fmt.Errorf("no scenario named %q", name)
}
