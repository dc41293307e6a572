package mission

import (
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
)

// Spec holds the vehicle's capabilities and the journey to make.
//
// Autonomy is the longest uninterrupted run of travel days possible before
// a refuel wait is required. A wait of one or more whole days at any
// location restores it fully.
type Spec struct {
	Autonomy     int
	Departure    galaxy.Location
	Arrival      galaxy.Location
	DepartureDay int
}

// Validate checks the spec against the route graph. Returns
// InvalidMissionError on the first violation found.
func (s Spec) Validate(graph *galaxy.Graph) error {
	if s.Autonomy <= 0 {
		return NewInvalidMissionError("autonomy", "must be a positive number of days")
	}
	if s.DepartureDay < 0 {
		return NewInvalidMissionError("departure_day", "must not be negative")
	}
	if s.Departure == "" || !graph.HasLocation(s.Departure) {
		return NewInvalidMissionError("departure", "location is not present in the route graph")
	}
	if s.Arrival == "" || !graph.HasLocation(s.Arrival) {
		return NewInvalidMissionError("arrival", "location is not present in the route graph")
	}
	return nil
}
