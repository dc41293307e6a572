package odds_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

func TestSurvivalOdds_ClosedForm(t *testing.T) {
	assert.Equal(t, 1.0, odds.SurvivalOdds(0))

	for e := 1; e <= 20; e++ {
		expected := math.Pow(0.9, float64(e))
		assert.InDelta(t, expected, odds.SurvivalOdds(e), 1e-12, "encounters=%d", e)
	}

	assert.InDelta(t, 0.9, odds.SurvivalOdds(1), 1e-12)
	assert.InDelta(t, 0.81, odds.SurvivalOdds(2), 1e-12)
}

func TestScore_NoSightings(t *testing.T) {
	scorer := odds.NewEncounterScorer(mission.Threat{Countdown: 10})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Endor", ArrivalDay: 6, DepartureDay: 6},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 0, outcome.Encounters)
	assert.Equal(t, 1.0, outcome.Odds)
	assert.Equal(t, schedule, outcome.Schedule)
}

func TestScore_ImmediateDepartureNotPresentAtOrigin(t *testing.T) {
	scorer := odds.NewEncounterScorer(mission.Threat{
		Countdown: 6,
		Sightings: []mission.Sighting{{Location: "Tatooine", Day: 0}},
	})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Endor", ArrivalDay: 6, DepartureDay: 6},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 0, outcome.Encounters)
	assert.Equal(t, 1.0, outcome.Odds)
}

func TestScore_PresentOnFinalArrivalDay(t *testing.T) {
	scorer := odds.NewEncounterScorer(mission.Threat{
		Countdown: 6,
		Sightings: []mission.Sighting{{Location: "Endor", Day: 6}},
	})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Endor", ArrivalDay: 6, DepartureDay: 6},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 1, outcome.Encounters)
	assert.InDelta(t, 0.9, outcome.Odds, 1e-12)
}

func TestScore_WaitingAtOriginExposesIt(t *testing.T) {
	scorer := odds.NewEncounterScorer(mission.Threat{
		Countdown: 8,
		Sightings: []mission.Sighting{{Location: "Tatooine", Day: 1}},
	})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 1},
		{Location: "Endor", ArrivalDay: 7, DepartureDay: 7},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 1, outcome.Encounters)
}

func TestScore_EveryOccupiedDayCounts(t *testing.T) {
	// Arrive Hoth day 6, refuel day 7: both days coincide with sightings.
	scorer := odds.NewEncounterScorer(mission.Threat{
		Countdown: 8,
		Sightings: []mission.Sighting{
			{Location: "Hoth", Day: 6},
			{Location: "Hoth", Day: 7},
			{Location: "Hoth", Day: 8},
		},
	})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Hoth", ArrivalDay: 6, DepartureDay: 7},
		{Location: "Endor", ArrivalDay: 8, DepartureDay: 8},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 2, outcome.Encounters)
	assert.InDelta(t, 0.81, outcome.Odds, 1e-12)
}

func TestScore_MultipleSightingsSameDayAllCount(t *testing.T) {
	scorer := odds.NewEncounterScorer(mission.Threat{
		Countdown: 6,
		Sightings: []mission.Sighting{
			{Location: "Endor", Day: 6},
			{Location: "Endor", Day: 6},
		},
	})
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Endor", ArrivalDay: 6, DepartureDay: 6},
	}

	outcome := scorer.Score(schedule)

	assert.Equal(t, 2, outcome.Encounters)
}
