package cli

import (
	"fmt"

	"github.com/loanscope/loan-compare/internal/compare"
	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/spf13/cobra"
)

func newBreakevenCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Breakeven horizons for discount points and refinances",
	}

	cmd.AddCommand(
		newBreakevenPointsCmd(rc),
		newBreakevenRefinanceCmd(rc),
	)

	return cmd
}

func newBreakevenPointsCmd(rc *RootConfig) *cobra.Command {
	var (
		cost    float64
		savings float64
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Months of payment savings needed to recover a points cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			months := compare.PointsBreakevenMonths(cost, savings)
			fmt.Fprintf(cmd.OutOrStdout(), "Points breakeven: %s\n", output.PrettyBreakeven(months))
			return nil
		},
	}

	cmd.Flags().Float64Var(&cost, "cost", 0, "upfront discount points cost")
	cmd.Flags().Float64Var(&savings, "savings", 0, "monthly payment savings from the lower rate")

	return cmd
}

func newBreakevenRefinanceCmd(rc *RootConfig) *cobra.Command {
	var (
		currentName  string
		proposedName string
	)

	cmd := &cobra.Command{
		Use:   "refinance",
		Short: "Months for a refinance's closing costs to pay for themselves",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := rc.Load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			currentConfig, err := selectScenario(conf, currentName)
			if err != nil {
				return err
			}
			proposedConfig, err := selectScenario(conf, proposedName)
			if err != nil {
				return err
			}
			if currentName == "" && proposedName == "" {
				if len(conf.Scenarios) < 2 {
					return fmt.Errorf("refinance breakeven needs two scenarios; specify --current and --proposed")
				}
				currentConfig = conf.Scenarios[0]
				proposedConfig = conf.Scenarios[1]
			}

			eng := engine.New(logger)
			current, err := computeOne(eng, currentConfig)
			if err != nil {
				return err
			}
			proposed, err := computeOne(eng, proposedConfig)
			if err != nil {
				return err
			}

			months := compare.RefinanceBreakevenMonths(current, proposed)
			fmt.Fprintf(cmd.OutOrStdout(), "Refinance breakeven (%s -> %s): %s\n",
				current.ScenarioName, proposed.ScenarioName, output.PrettyBreakeven(months))
			return nil
		},
	}

	cmd.Flags().StringVar(&currentName, "current", "", "name of the current loan scenario")
	cmd.Flags().StringVar(&proposedName, "proposed", "", "name of the proposed refinance scenario")

	return cmd
}

func computeOne(eng *engine.Engine, sc config.ScenarioConfig) (engine.Result, error) {
	scenario, err := sc.Build()
	if err != nil {
		return engine.Result{}, err
	}
	return eng.Compute(scenario)
}
