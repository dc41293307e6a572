package galaxy

import (
	"sort"
)

// Location names a node in the route network. Locations are opaque
// identifiers and immutable once loaded.
type Location string

// RouteEdge is a single route record between two locations. Parallel routes
// between the same pair with different travel times are distinct edges.
type RouteEdge struct {
	Origin      Location
	Destination Location
	TravelDays  int
}

// Edge is an adjacency entry as stored in the graph: the neighbor reached
// and the travel time of the specific route taken.
type Edge struct {
	To         Location
	TravelDays int
}

// Graph is the route network as an adjacency structure keyed by location.
// Routes are usable in either direction, so every edge is stored under both
// endpoints. Parallel edges are preserved, never collapsed.
//
// Invariants:
// - Neighbors of every location are sorted (by name, then travel time) so
//   traversal order is deterministic
// - The graph is immutable after Build
type Graph struct {
	adjacency map[Location][]Edge
}

// Build constructs a Graph from route records.
// Returns MalformedRouteError if an edge has an empty endpoint or a
// negative travel time.
func Build(edges []RouteEdge) (*Graph, error) {
	adjacency := make(map[Location][]Edge)

	for _, e := range edges {
		if e.Origin == "" || e.Destination == "" {
			return nil, NewMalformedRouteError(e, "route references an empty location")
		}
		if e.TravelDays < 0 {
			return nil, NewMalformedRouteError(e, "route has a negative travel time")
		}

		adjacency[e.Origin] = append(adjacency[e.Origin], Edge{To: e.Destination, TravelDays: e.TravelDays})
		adjacency[e.Destination] = append(adjacency[e.Destination], Edge{To: e.Origin, TravelDays: e.TravelDays})
	}

	// Deterministic neighbor order for reproducible path enumeration
	for loc := range adjacency {
		neighbors := adjacency[loc]
		sort.Slice(neighbors, func(i, j int) bool {
			if neighbors[i].To != neighbors[j].To {
				return neighbors[i].To < neighbors[j].To
			}
			return neighbors[i].TravelDays < neighbors[j].TravelDays
		})
	}

	return &Graph{adjacency: adjacency}, nil
}

// Neighbors returns the adjacency entries of a location in deterministic
// order. The returned slice is shared and must not be mutated.
func (g *Graph) Neighbors(loc Location) []Edge {
	return g.adjacency[loc]
}

// HasLocation reports whether a location appears in any route.
func (g *Graph) HasLocation(loc Location) bool {
	_, ok := g.adjacency[loc]
	return ok
}

// Locations returns all known locations in sorted order.
func (g *Graph) Locations() []Location {
	locations := make([]Location, 0, len(g.adjacency))
	for loc := range g.adjacency {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i] < locations[j] })
	return locations
}

// Size returns the number of distinct locations.
func (g *Graph) Size() int {
	return len(g.adjacency)
}
