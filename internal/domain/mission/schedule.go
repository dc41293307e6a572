package mission

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
)

// Stop is one entry of a concrete day-by-day schedule: the vehicle arrives
// at Location on ArrivalDay, waits DepartureDay-ArrivalDay whole days
// (0 when passing straight through), then departs along the next leg.
type Stop struct {
	Location     galaxy.Location
	ArrivalDay   int
	DepartureDay int
}

// Wait returns the number of whole days spent waiting at this stop.
func (s Stop) Wait() int {
	return s.DepartureDay - s.ArrivalDay
}

// Schedule is an ordered sequence of stops derived from a path plus a
// choice of wait durations. The first stop is the departure location with
// ArrivalDay equal to the mission departure day; the last stop is the
// arrival location.
type Schedule []Stop

// ArrivalDay returns the day the final location is reached, or -1 for an
// empty schedule.
func (s Schedule) ArrivalDay() int {
	if len(s) == 0 {
		return -1
	}
	return s[len(s)-1].ArrivalDay
}

// Route returns the sequence of locations visited.
func (s Schedule) Route() []galaxy.Location {
	route := make([]galaxy.Location, len(s))
	for i, stop := range s {
		route[i] = stop.Location
	}
	return route
}

// Clone returns an independent copy. Schedules handed out of the explorer
// are clones so the backtracking buffer can be reused.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

func (s Schedule) String() string {
	parts := make([]string, len(s))
	for i, stop := range s {
		if wait := stop.Wait(); wait > 0 {
			parts[i] = fmt.Sprintf("%s[day %d, wait %d]", stop.Location, stop.ArrivalDay, wait)
		} else {
			parts[i] = fmt.Sprintf("%s[day %d]", stop.Location, stop.ArrivalDay)
		}
	}
	return strings.Join(parts, " -> ")
}
