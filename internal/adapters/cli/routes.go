package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/persistence"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/database"
)

// routeRecord is one entry of a routes JSON file.
type routeRecord struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TravelTime  int    `json:"travel_time"`
}

// NewRoutesCommand creates the routes command group
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Manage universe route databases",
	}

	cmd.AddCommand(newRoutesImportCommand())

	return cmd
}

func newRoutesImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <universe.db> <routes.json>",
		Short: "Seed a routes database from a JSON array of route records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, jsonPath := args[0], args[1]

			data, err := os.ReadFile(jsonPath)
			if err != nil {
				return fmt.Errorf("failed to read routes file: %w", err)
			}

			var records []routeRecord
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("invalid JSON in %s: %w", jsonPath, err)
			}

			edges := make([]galaxy.RouteEdge, 0, len(records))
			for _, rec := range records {
				edges = append(edges, galaxy.RouteEdge{
					Origin:      galaxy.Location(rec.Origin),
					Destination: galaxy.Location(rec.Destination),
					TravelDays:  rec.TravelTime,
				})
			}

			// Reject malformed records before touching the database
			if _, err := galaxy.Build(edges); err != nil {
				return err
			}

			db, err := database.NewConnection(database.Config{Type: "sqlite", Path: dbPath})
			if err != nil {
				return fmt.Errorf("failed to open routes database: %w", err)
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate routes database: %w", err)
			}

			repo := persistence.NewGormRouteRepository(db)
			if err := repo.Save(cmd.Context(), edges); err != nil {
				return err
			}

			fmt.Printf("Imported %d routes into %s\n", len(edges), dbPath)
			return nil
		},
	}
}
