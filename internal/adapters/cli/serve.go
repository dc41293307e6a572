package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/loader"
	"github.com/andrescamacho/give-me-the-odds/internal/adapters/persistence"
	"github.com/andrescamacho/give-me-the-odds/internal/adapters/web"
	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/config"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/database"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the odds web service",
		Long: `Serve exposes the odds computation over HTTP. The Millennium Falcon
document is fixed server-side (server.falcon_config); clients upload an
Empire document per request.

Endpoints:
  GET  /health
  POST /api/odds    multipart field "empire" or a raw JSON body`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoadConfig(configPath)

			falcon, err := loader.LoadFalcon(cfg.Server.FalconConfig)
			if err != nil {
				return err
			}

			db, err := database.NewConnection(falcon.Database)
			if err != nil {
				return fmt.Errorf("failed to open routes database: %w", err)
			}
			defer database.Close(db)

			calculator := odds.NewCalculator(persistence.NewGormRouteRepository(db), workers)
			handler := web.NewRouter(calculator, falcon.Mission, &cfg.RateLimit)

			log.Printf("Falcon document: %s (%s -> %s)",
				cfg.Server.FalconConfig, falcon.Mission.Departure, falcon.Mission.Arrival)
			log.Printf("Listening on %s", cfg.Server.Address)
			return http.ListenAndServe(cfg.Server.Address, handler)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: search config.yaml)")
	cmd.Flags().IntVar(&workers, "workers", workers, "Number of paths explored concurrently")

	return cmd
}
