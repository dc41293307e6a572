package odds

import (
	"context"
	"fmt"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// RouteRepository is the port through which route records are retrieved
// from a persisted store.
type RouteRepository interface {
	ListAll(ctx context.Context) ([]galaxy.RouteEdge, error)
}

// Calculator is the use-case entry point: it loads the route records,
// builds the graph once, and runs the optimizer against it.
type Calculator struct {
	routes  RouteRepository
	workers int
}

// NewCalculator creates a calculator backed by a route repository.
func NewCalculator(routes RouteRepository, workers int) *Calculator {
	return &Calculator{routes: routes, workers: workers}
}

// GiveMeTheOdds computes the best achievable outcome for the mission.
func (c *Calculator) GiveMeTheOdds(ctx context.Context, spec mission.Spec, threat mission.Threat) (mission.Outcome, error) {
	edges, err := c.routes.ListAll(ctx)
	if err != nil {
		return mission.Outcome{}, fmt.Errorf("failed to load routes: %w", err)
	}

	graph, err := galaxy.Build(edges)
	if err != nil {
		return mission.Outcome{}, err
	}

	return NewMissionOptimizer(graph, c.workers).Solve(ctx, spec, threat)
}
