package odds

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// MissionOptimizer drives the whole pipeline: every fuel-feasible path,
// every in-deadline schedule for it, every schedule scored, and the best
// outcome kept.
//
// Each path's schedule exploration is independent, so paths are fanned out
// across a bounded worker group and the best outcome is folded under a
// mutex. The fold orders candidates by odds, then earlier arrival day,
// then discovery order, so the result is identical for any worker count.
type MissionOptimizer struct {
	graph   *galaxy.Graph
	workers int
}

// NewMissionOptimizer creates an optimizer over the given route graph.
// Worker counts below 1 are treated as 1.
func NewMissionOptimizer(graph *galaxy.Graph, workers int) *MissionOptimizer {
	if workers < 1 {
		workers = 1
	}
	return &MissionOptimizer{graph: graph, workers: workers}
}

// candidate tracks where an outcome was discovered so ties break
// deterministically regardless of worker interleaving.
type candidate struct {
	outcome   mission.Outcome
	pathIndex int
	schedIdx  int
}

// better reports whether a should be preferred over b.
func better(a, b candidate) bool {
	if a.outcome.Odds != b.outcome.Odds {
		return a.outcome.Odds > b.outcome.Odds
	}
	if a.outcome.Schedule.ArrivalDay() != b.outcome.Schedule.ArrivalDay() {
		return a.outcome.Schedule.ArrivalDay() < b.outcome.Schedule.ArrivalDay()
	}
	if a.pathIndex != b.pathIndex {
		return a.pathIndex < b.pathIndex
	}
	return a.schedIdx < b.schedIdx
}

// Solve validates the inputs and runs the optimization. Structural input
// errors fail fast before the search starts; once started, the search
// cannot fail, and exhausting the space yields the no-feasible-arrival
// outcome.
func (o *MissionOptimizer) Solve(ctx context.Context, spec mission.Spec, threat mission.Threat) (mission.Outcome, error) {
	if err := spec.Validate(o.graph); err != nil {
		return mission.Outcome{}, err
	}
	if err := threat.Validate(); err != nil {
		return mission.Outcome{}, err
	}

	enumerator := NewPathEnumerator(o.graph)
	explorer := NewScheduleExplorer()
	scorer := NewEncounterScorer(threat)

	paths := enumerator.Enumerate(spec.Departure, spec.Arrival, spec.Autonomy)

	var (
		mu   sync.Mutex
		best *candidate
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(o.workers)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Best schedule of this path, folded locally; one lock per path.
			var local *candidate
			schedIdx := 0
			explorer.Explore(path, spec, threat, func(schedule mission.Schedule) bool {
				c := candidate{outcome: scorer.Score(schedule), pathIndex: i, schedIdx: schedIdx}
				schedIdx++
				if local == nil || better(c, *local) {
					local = &c
				}
				return true
			})

			if local != nil {
				mu.Lock()
				if best == nil || better(*local, *best) {
					best = local
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return mission.Outcome{}, err
	}

	if best == nil {
		return mission.NoFeasibleArrival(), nil
	}
	return best.outcome, nil
}
