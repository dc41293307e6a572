package mission

import (
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
)

// Sighting is a recorded hostile presence at a location on a specific day.
type Sighting struct {
	Location galaxy.Location
	Day      int
}

// Threat holds the deadline and the hostile-sighting table. Countdown is
// the last day on which arrival still counts as success.
type Threat struct {
	Countdown int
	Sightings []Sighting
}

// Validate checks the threat document. Returns InvalidThreatError on the
// first violation found.
func (t Threat) Validate() error {
	if t.Countdown < 0 {
		return NewInvalidThreatError("countdown", "must not be negative")
	}
	for _, s := range t.Sightings {
		if s.Location == "" {
			return NewInvalidThreatError("sightings", "sighting references an empty location")
		}
		if s.Day < 0 {
			return NewInvalidThreatError("sightings", "sighting day must not be negative")
		}
	}
	return nil
}

// SightingTable is an immutable lookup of sighting counts per location/day,
// built once before optimization. Multiple sightings at the same location
// and day each count.
type SightingTable map[galaxy.Location]map[int]int

// NewSightingTable indexes a threat's sightings for constant-time lookup.
func NewSightingTable(sightings []Sighting) SightingTable {
	table := make(SightingTable)
	for _, s := range sightings {
		days, ok := table[s.Location]
		if !ok {
			days = make(map[int]int)
			table[s.Location] = days
		}
		days[s.Day]++
	}
	return table
}

// Count returns the number of sightings at a location on a day.
func (t SightingTable) Count(loc galaxy.Location, day int) int {
	return t[loc][day]
}
