package cli

import (
	"fmt"
	"os"

	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/spf13/cobra"
)

func newHECMCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hecm",
		Short: "Size a reverse mortgage and project line-of-credit growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := rc.Load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if conf.HECM == nil {
				return fmt.Errorf("no hecm block in configuration")
			}

			scenario := conf.HECM.BuildHECM()
			result, err := engine.New(logger).ComputeHECM(scenario)
			if err != nil {
				return err
			}

			output.PrettyHECM(os.Stdout, scenario, result)
			return nil
		},
	}

	return cmd
}
