package odds

import (
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
)

// Leg is one traversed route of a path: the concrete edge chosen, including
// its travel time. Parallel routes between the same pair produce distinct
// legs and therefore distinct paths.
type Leg struct {
	From       galaxy.Location
	To         galaxy.Location
	TravelDays int
}

// Path is an ordered sequence of legs from the departure location to the
// arrival location, visiting each location at most once.
type Path struct {
	Origin galaxy.Location
	Legs   []Leg
}

// Locations returns the sequence of locations the path visits.
func (p Path) Locations() []galaxy.Location {
	locations := make([]galaxy.Location, 0, len(p.Legs)+1)
	locations = append(locations, p.Origin)
	for _, leg := range p.Legs {
		locations = append(locations, leg.To)
	}
	return locations
}

// TravelDays returns the total travel time of the path, waits excluded.
func (p Path) TravelDays() int {
	total := 0
	for _, leg := range p.Legs {
		total += leg.TravelDays
	}
	return total
}

func (p Path) clone() Path {
	legs := make([]Leg, len(p.Legs))
	copy(legs, p.Legs)
	return Path{Origin: p.Origin, Legs: legs}
}

// PathEnumerator produces every simple path between two locations that a
// vehicle with the given autonomy can traverse under some placement of
// refuel waits. A leg longer than the autonomy can never be taken, since
// no wait shortens an edge; any shorter leg is always traversable after a
// refuel, so fuel feasibility reduces to a per-leg bound here.
type PathEnumerator struct {
	graph *galaxy.Graph
}

// NewPathEnumerator creates an enumerator over the given route graph.
func NewPathEnumerator(graph *galaxy.Graph) *PathEnumerator {
	return &PathEnumerator{graph: graph}
}

// Walk visits every fuel-feasible simple path from departure to arrival in
// depth-first discovery order. The graph's sorted adjacency makes the
// order deterministic. The walk stops early when visit returns false.
func (e *PathEnumerator) Walk(departure, arrival galaxy.Location, autonomy int, visit func(Path) bool) {
	if !e.graph.HasLocation(departure) || !e.graph.HasLocation(arrival) {
		return
	}

	visited := map[galaxy.Location]bool{departure: true}
	current := Path{Origin: departure}
	e.walk(departure, arrival, autonomy, visited, &current, visit)
}

// walk recurses one location deeper. Recursion depth is bounded by the
// number of distinct locations in the graph.
func (e *PathEnumerator) walk(
	at, arrival galaxy.Location,
	autonomy int,
	visited map[galaxy.Location]bool,
	current *Path,
	visit func(Path) bool,
) bool {
	if at == arrival {
		return visit(current.clone())
	}

	for _, edge := range e.graph.Neighbors(at) {
		if visited[edge.To] || edge.TravelDays > autonomy {
			continue
		}

		visited[edge.To] = true
		current.Legs = append(current.Legs, Leg{From: at, To: edge.To, TravelDays: edge.TravelDays})

		ok := e.walk(edge.To, arrival, autonomy, visited, current, visit)

		current.Legs = current.Legs[:len(current.Legs)-1]
		visited[edge.To] = false

		if !ok {
			return false
		}
	}
	return true
}

// Enumerate collects every fuel-feasible simple path in discovery order.
func (e *PathEnumerator) Enumerate(departure, arrival galaxy.Location, autonomy int) []Path {
	var paths []Path
	e.Walk(departure, arrival, autonomy, func(p Path) bool {
		paths = append(paths, p)
		return true
	})
	return paths
}
