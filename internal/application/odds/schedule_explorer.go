package odds

import (
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// ScheduleExplorer enumerates, for a fixed path, every feasible day-by-day
// schedule: at each stop the vehicle may wait zero or more whole days
// before taking the next leg, subject to the fuel rule and the countdown.
//
// Fuel rule: remaining fuel must cover the next leg's travel time. A wait
// of one or more days restores fuel to the full autonomy; a zero-day wait
// keeps whatever was left after the previous leg.
//
// Deadline rule: a branch is abandoned as soon as the current day plus the
// travel time still ahead exceeds the countdown, and wait lengths are only
// explored up to that same bound. This pruning is what keeps the search
// tractable when the countdown is large.
type ScheduleExplorer struct{}

// NewScheduleExplorer creates a schedule explorer.
func NewScheduleExplorer() *ScheduleExplorer {
	return &ScheduleExplorer{}
}

// Explore visits every schedule for the path whose final arrival day is at
// or before the countdown. Schedules are visited in increasing wait order
// at each stop, front stops varying slowest, so the sequence is
// deterministic. The walk stops early when visit returns false. Paths with
// no in-deadline schedule produce no visits.
func (x *ScheduleExplorer) Explore(path Path, spec mission.Spec, threat mission.Threat, visit func(mission.Schedule) bool) {
	// Travel time still ahead of each stop, used as the admissible lower
	// bound for deadline pruning (forced refuel days only add to it).
	remaining := make([]int, len(path.Legs)+1)
	for i := len(path.Legs) - 1; i >= 0; i-- {
		remaining[i] = remaining[i+1] + path.Legs[i].TravelDays
	}

	buf := make(mission.Schedule, len(path.Legs)+1)
	x.explore(path, spec, threat, remaining, buf, 0, spec.DepartureDay, spec.Autonomy, visit)
}

// explore fixes the wait at stop index and recurses along the next leg.
// Recursion depth is bounded by the path length, itself bounded by the
// number of locations in the graph.
func (x *ScheduleExplorer) explore(
	path Path,
	spec mission.Spec,
	threat mission.Threat,
	remaining []int,
	buf mission.Schedule,
	index, day, fuel int,
	visit func(mission.Schedule) bool,
) bool {
	location := path.Origin
	if index > 0 {
		location = path.Legs[index-1].To
	}

	if index == len(path.Legs) {
		// Forced refuel waits can overshoot even with the wait bound, so
		// the deadline is checked once more on arrival.
		if day > threat.Countdown {
			return true
		}
		buf[index] = mission.Stop{Location: location, ArrivalDay: day, DepartureDay: day}
		return visit(buf.Clone())
	}

	leg := path.Legs[index]

	maxWait := threat.Countdown - day - remaining[index]
	if maxWait < 0 {
		return true
	}

	minWait := 0
	if fuel < leg.TravelDays {
		// Not enough fuel for the next leg: a refuel wait is mandatory.
		minWait = 1
	}

	for wait := minWait; wait <= maxWait; wait++ {
		departFuel := fuel
		if wait >= 1 {
			departFuel = spec.Autonomy
		}

		buf[index] = mission.Stop{Location: location, ArrivalDay: day, DepartureDay: day + wait}
		if !x.explore(path, spec, threat, remaining, buf, index+1, day+wait+leg.TravelDays, departFuel-leg.TravelDays, visit) {
			return false
		}
	}
	return true
}
