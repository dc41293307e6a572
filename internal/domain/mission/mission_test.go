package mission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

func testGraph(t *testing.T) *galaxy.Graph {
	t.Helper()
	graph, err := galaxy.Build([]galaxy.RouteEdge{
		{Origin: "Tatooine", Destination: "Endor", TravelDays: 6},
	})
	require.NoError(t, err)
	return graph
}

func TestSpecValidate(t *testing.T) {
	graph := testGraph(t)

	valid := mission.Spec{Autonomy: 6, Departure: "Tatooine", Arrival: "Endor"}
	assert.NoError(t, valid.Validate(graph))

	cases := []struct {
		name string
		spec mission.Spec
	}{
		{"zero autonomy", mission.Spec{Autonomy: 0, Departure: "Tatooine", Arrival: "Endor"}},
		{"negative departure day", mission.Spec{Autonomy: 6, Departure: "Tatooine", Arrival: "Endor", DepartureDay: -1}},
		{"unknown departure", mission.Spec{Autonomy: 6, Departure: "Alderaan", Arrival: "Endor"}},
		{"unknown arrival", mission.Spec{Autonomy: 6, Departure: "Tatooine", Arrival: "Alderaan"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate(graph)
			require.Error(t, err)
			var invalid *mission.InvalidMissionError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestThreatValidate(t *testing.T) {
	valid := mission.Threat{Countdown: 7, Sightings: []mission.Sighting{{Location: "Hoth", Day: 6}}}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		threat mission.Threat
	}{
		{"negative countdown", mission.Threat{Countdown: -1}},
		{"empty sighting location", mission.Threat{Countdown: 7, Sightings: []mission.Sighting{{Location: "", Day: 1}}}},
		{"negative sighting day", mission.Threat{Countdown: 7, Sightings: []mission.Sighting{{Location: "Hoth", Day: -2}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.threat.Validate()
			require.Error(t, err)
			var invalid *mission.InvalidThreatError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestSightingTable_CountsRepeats(t *testing.T) {
	table := mission.NewSightingTable([]mission.Sighting{
		{Location: "Hoth", Day: 6},
		{Location: "Hoth", Day: 6},
		{Location: "Hoth", Day: 7},
	})

	assert.Equal(t, 2, table.Count("Hoth", 6))
	assert.Equal(t, 1, table.Count("Hoth", 7))
	assert.Equal(t, 0, table.Count("Hoth", 8))
	assert.Equal(t, 0, table.Count("Endor", 6))
}

func TestSchedule_Accessors(t *testing.T) {
	schedule := mission.Schedule{
		{Location: "Tatooine", ArrivalDay: 0, DepartureDay: 0},
		{Location: "Dagobah", ArrivalDay: 6, DepartureDay: 7},
		{Location: "Endor", ArrivalDay: 11, DepartureDay: 11},
	}

	assert.Equal(t, 11, schedule.ArrivalDay())
	assert.Equal(t, []galaxy.Location{"Tatooine", "Dagobah", "Endor"}, schedule.Route())
	assert.Equal(t, 1, schedule[1].Wait())
	assert.Equal(t, -1, mission.Schedule{}.ArrivalDay())
}

func TestOutcome_Feasible(t *testing.T) {
	assert.False(t, mission.NoFeasibleArrival().Feasible())
	assert.Zero(t, mission.NoFeasibleArrival().Odds)

	outcome := mission.Outcome{Schedule: mission.Schedule{{Location: "Endor"}}, Odds: 1}
	assert.True(t, outcome.Feasible())
}
