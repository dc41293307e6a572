package odds

import (
	"math"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// EncounterScorer counts coincidences between a schedule and the
// hostile-sighting table and converts them into survival odds.
type EncounterScorer struct {
	table mission.SightingTable
}

// NewEncounterScorer indexes the threat's sightings for scoring.
func NewEncounterScorer(threat mission.Threat) *EncounterScorer {
	return &EncounterScorer{table: mission.NewSightingTable(threat.Sightings)}
}

// Score evaluates one schedule. The vehicle is exposed on every day of the
// closed interval [arrivalDay, departureDay] at each stop; a zero-wait
// departure from the origin leaves immediately and exposes no day there.
// Days spent in transit expose no location.
func (s *EncounterScorer) Score(schedule mission.Schedule) mission.Outcome {
	encounters := 0
	for i, stop := range schedule {
		if i == 0 && stop.Wait() == 0 {
			continue
		}
		for day := stop.ArrivalDay; day <= stop.DepartureDay; day++ {
			encounters += s.table.Count(stop.Location, day)
		}
	}

	return mission.Outcome{
		Schedule:   schedule,
		Encounters: encounters,
		Odds:       SurvivalOdds(encounters),
	}
}

// SurvivalOdds returns the probability of surviving the given number of
// encounters. Capture on the j-th encounter has probability 9^(j-1)/10^j,
// which telescopes to a survival probability of 0.9^n. The closed form is
// used directly instead of accumulating the series term by term, keeping
// the result numerically stable for any encounter count.
func SurvivalOdds(encounters int) float64 {
	if encounters <= 0 {
		return 1.0
	}
	return math.Pow(0.9, float64(encounters))
}
