package mission

// Outcome is the result of evaluating one schedule, or of a whole
// optimization: the survival odds in [0,1] and the schedule achieving
// them. A mission with no in-deadline schedule yields the zero-odds
// outcome with no schedule; that is a normal domain result, not an error.
type Outcome struct {
	Schedule   Schedule
	Encounters int
	Odds       float64
}

// NoFeasibleArrival is the outcome reported when no fuel-feasible path
// reaches the arrival location by the countdown.
func NoFeasibleArrival() Outcome {
	return Outcome{Odds: 0}
}

// Feasible reports whether the outcome carries a winning schedule.
func (o Outcome) Feasible() bool {
	return len(o.Schedule) > 0
}
