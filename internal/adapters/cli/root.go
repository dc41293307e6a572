package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/loader"
	"github.com/andrescamacho/give-me-the-odds/internal/adapters/persistence"
	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/database"
)

var (
	// Global flags
	outputFormat string
	workers      int
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "give-me-the-odds <millennium-falcon.json> <empire.json>",
		Short: "Compute the odds that the Millennium Falcon reaches its destination in time",
		Long: `give-me-the-odds reads the Millennium Falcon document (autonomy, departure,
arrival, routes database) and the Empire document (countdown, bounty hunter
sightings), searches every fuel-feasible itinerary, and prints the best
achievable odds of arriving before the countdown without capture.

Examples:
  give-me-the-odds millennium-falcon.json empire.json
  give-me-the-odds millennium-falcon.json empire.json --format json
  give-me-the-odds serve --config config.yaml
  give-me-the-odds routes import universe.db routes.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), args[0], args[1])
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.Flags().StringVar(&outputFormat, "format", "text",
		"Output format: text or json")
	rootCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(),
		"Number of paths explored concurrently")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewRoutesCommand())

	return rootCmd
}

// runCompute is the original odds computation flow: both documents come
// from the command line and the result goes to stdout.
func runCompute(ctx context.Context, falconPath, empirePath string) error {
	falcon, err := loader.LoadFalcon(falconPath)
	if err != nil {
		return err
	}

	threat, err := loader.LoadEmpire(empirePath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Mission: %s -> %s, autonomy %d days\n",
			falcon.Mission.Departure, falcon.Mission.Arrival, falcon.Mission.Autonomy)
		fmt.Fprintf(os.Stderr, "Countdown: %d days, %d sightings\n",
			threat.Countdown, len(threat.Sightings))
	}

	db, err := database.NewConnection(falcon.Database)
	if err != nil {
		return fmt.Errorf("failed to open routes database: %w", err)
	}
	defer database.Close(db)

	calculator := odds.NewCalculator(persistence.NewGormRouteRepository(db), workers)
	outcome, err := calculator.GiveMeTheOdds(ctx, falcon.Mission, threat)
	if err != nil {
		return err
	}

	return renderOutcome(os.Stdout, outcome, outputFormat)
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
