package cli

import (
	"github.com/spf13/cobra"

	"github.com/rjsky311/GHS-label-quick-search/internal/app"
	"github.com/rjsky311/GHS-label-quick-search/internal/config"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/internal/interfaces/mcp"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cliCtx.Config.Server.Port = port
			}
			if err := cliCtx.Config.Validate(); err != nil {
				return err
			}
			logger, err := cliCtx.ServerLogger(false)
			if err != nil {
				return err
			}

			a, err := app.New(cliCtx.Config, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			logger.Info("starting HTTP API",
				logging.String("addr", cliCtx.Config.Server.Addr()),
				logging.String("version", config.Version))
			return a.RunHTTP(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides server.port)")
	return cmd
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the search tools over the Model Context Protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			logger, err := cliCtx.ServerLogger(true)
			if err != nil {
				return err
			}
			a, err := app.New(cliCtx.Config, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			return mcp.Run(a.Search, logger, config.Version,
				mcp.WithNameLimit(cliCtx.Config.Search.NameSearchLimit))
		},
	}
}
