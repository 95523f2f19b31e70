package cli

import (
	"errors"
	"net/http"
	"time"

	"github.com/loanscope/loan-compare/internal/config"
	"github.com/loanscope/loan-compare/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadOptionalConfiguration reads the scenario configuration for its cache
// settings. The server does not need scenarios at startup, so a missing file
// is not an error.
func loadOptionalConfiguration(rc *RootConfig) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(rc.ConfigPath)
	if err != nil {
		return &config.Configuration{}, nil
	}
	return conf, nil
}

func newServeCmd(rc *RootConfig) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the loan comparison API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConfig, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverConfig.Address = address
			}
			if maxRequestSize != "" {
				size, err := server.ParseSize(maxRequestSize)
				if err != nil {
					return err
				}
				serverConfig.SetRequestSizeBytes(size)
			}

			logger, err := initializeLogger(serverConfig.Logging, rc.LogLevel)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			conf, err := loadOptionalConfiguration(rc)
			if err != nil {
				return err
			}

			handler := server.NewHandler(logger, resultCache(conf, logger), serverConfig.RequestSizeBytes(), rc.Version)

			httpServer := &http.Server{
				Addr:              serverConfig.Address,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("listening",
				zap.String("op", "cli.serve"),
				zap.String("address", serverConfig.Address),
			)

			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", "", "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	cmd.Flags().StringVar(&maxRequestSize, "max-request-size", "", "request body limit override (e.g. 256K, 1M)")

	return cmd
}
