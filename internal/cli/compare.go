package cli

import (
	"fmt"
	"os"

	"github.com/loanscope/loan-compare/internal/cache"
	"github.com/loanscope/loan-compare/internal/compare"
	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/engine"
	"github.com/loanscope/loan-compare/internal/store"
	"github.com/loanscope/loan-compare/pkg/constants"
	"github.com/loanscope/loan-compare/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resultCache builds the optional result cache selected by configuration.
func resultCache(conf *config.Configuration, logger *zap.Logger) *cache.ResultCache {
	if !conf.Cache.Enabled {
		return nil
	}
	if conf.Cache.RedisAddr != "" {
		return cache.NewResultCache(cache.NewRedisCache(conf.Cache.RedisAddr), logger)
	}
	return cache.NewResultCache(cache.NewMemoryCache(), logger)
}

// computeAll runs every configured scenario through the engine, consulting
// the cache when one is configured.
func computeAll(cmd *cobra.Command, conf *config.Configuration, eng *engine.Engine, results *cache.ResultCache) ([]engine.Result, error) {
	ctx := cmd.Context()
	computed := make([]engine.Result, 0, len(conf.Scenarios))
	for _, sc := range conf.Scenarios {
		if results != nil {
			if cached, hit := results.Lookup(ctx, sc); hit {
				computed = append(computed, cached)
				continue
			}
		}

		scenario, err := sc.Build()
		if err != nil {
			return nil, err
		}
		result, err := eng.Compute(scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to compute scenario %s: %w", sc.Name, err)
		}
		if results != nil {
			results.Store(ctx, sc, result)
		}
		computed = append(computed, result)
	}
	return computed, nil
}

func newCompareCmd(rc *RootConfig) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compute every configured scenario and rank them by cost metrics",
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

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "cli.compare"),
				)
			}

			eng := engine.New(logger)
			results, err := computeAll(cmd, conf, eng, resultCache(conf, logger))
			if err != nil {
				return err
			}

			if save {
				if err := saveResults(conf, results); err != nil {
					return err
				}
				logger.Info("saved scenarios and results",
					zap.String("op", "cli.compare"),
					zap.Int("scenarios", len(results)),
				)
			}

			switch format {
			case constants.OutputFormatPretty:
				output.PrettyComparison(os.Stdout, results, compare.Results(results))
			case constants.OutputFormatCSV:
				output.CsvComparison(os.Stdout, results)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist scenarios and results to the scenario store")

	return cmd
}

func saveResults(conf *config.Configuration, results []engine.Result) error {
	st, err := store.Open(storePath(conf))
	if err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()

	for i, sc := range conf.Scenarios {
		id, err := st.SaveScenario(sc)
		if err != nil {
			return fmt.Errorf("failed to save scenario %s: %w", sc.Name, err)
		}
		if err := st.SaveResult(id, results[i]); err != nil {
			return fmt.Errorf("failed to save result for %s: %w", sc.Name, err)
		}
	}
	return nil
}

func storePath(conf *config.Configuration) string {
	if conf.Store.Path != "" {
		return conf.Store.Path
	}
	return constants.DefaultStoreFile
}
