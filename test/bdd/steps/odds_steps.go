package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// oddsContext holds the state of one scenario.
type oddsContext struct {
	edges     []galaxy.RouteEdge
	spec      mission.Spec
	sightings []mission.Sighting
	outcome   mission.Outcome
}

// InitializeOddsScenario registers the step definitions for odds features.
func InitializeOddsScenario(sc *godog.ScenarioContext) {
	c := &oddsContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		*c = oddsContext{}
		return ctx, nil
	})

	sc.Step(`^the galaxy has the following routes:$`, c.theGalaxyHasRoutes)
	sc.Step(`^the Millennium Falcon has an autonomy of (\d+) days, departing (\w+) for (\w+)$`, c.theFalconIsConfigured)
	sc.Step(`^bounty hunters have been sighted on (\w+) on days ([\d, and]+)$`, c.bountyHuntersSighted)
	sc.Step(`^no bounty hunters have been sighted$`, c.noBountyHunters)
	sc.Step(`^the countdown is (\d+) days$`, c.theCountdownIs)
	sc.Step(`^the success probability is (\d+)%$`, c.theSuccessProbabilityIs)
	sc.Step(`^the winning itinerary is (.+)$`, c.theWinningItineraryIs)
	sc.Step(`^no itinerary is proposed$`, c.noItineraryIsProposed)
}

func (c *oddsContext) theGalaxyHasRoutes(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("route table needs a header and at least one row")
	}

	c.edges = nil
	for _, row := range table.Rows[1:] {
		travel, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("invalid travel time %q: %w", row.Cells[2].Value, err)
		}
		c.edges = append(c.edges, galaxy.RouteEdge{
			Origin:      galaxy.Location(row.Cells[0].Value),
			Destination: galaxy.Location(row.Cells[1].Value),
			TravelDays:  travel,
		})
	}
	return nil
}

func (c *oddsContext) theFalconIsConfigured(autonomy int, departure, arrival string) error {
	c.spec = mission.Spec{
		Autonomy:  autonomy,
		Departure: galaxy.Location(departure),
		Arrival:   galaxy.Location(arrival),
	}
	return nil
}

func (c *oddsContext) bountyHuntersSighted(planet, days string) error {
	c.sightings = nil
	for _, field := range strings.FieldsFunc(days, func(r rune) bool { return r == ',' || r == ' ' }) {
		if field == "and" {
			continue
		}
		day, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("invalid sighting day %q: %w", field, err)
		}
		c.sightings = append(c.sightings, mission.Sighting{Location: galaxy.Location(planet), Day: day})
	}
	return nil
}

func (c *oddsContext) noBountyHunters() error {
	c.sightings = nil
	return nil
}

func (c *oddsContext) theCountdownIs(countdown int) error {
	graph, err := galaxy.Build(c.edges)
	if err != nil {
		return err
	}

	threat := mission.Threat{Countdown: countdown, Sightings: c.sightings}
	outcome, err := odds.NewMissionOptimizer(graph, 1).Solve(context.Background(), c.spec, threat)
	if err != nil {
		return err
	}

	c.outcome = outcome
	return nil
}

func (c *oddsContext) theSuccessProbabilityIs(percentage int) error {
	got := c.outcome.Odds * 100
	if math.Abs(got-float64(percentage)) > 1e-9 {
		return fmt.Errorf("expected %d%% but got %.4f%%", percentage, got)
	}
	return nil
}

func (c *oddsContext) theWinningItineraryIs(itinerary string) error {
	var route []string
	for _, loc := range c.outcome.Schedule.Route() {
		route = append(route, string(loc))
	}
	got := strings.Join(route, " -> ")
	if got != strings.TrimSpace(itinerary) {
		return fmt.Errorf("expected itinerary %q but got %q", itinerary, got)
	}
	return nil
}

func (c *oddsContext) noItineraryIsProposed() error {
	if c.outcome.Feasible() {
		return fmt.Errorf("expected no itinerary but got %s", c.outcome.Schedule)
	}
	return nil
}
