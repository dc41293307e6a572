package galaxy

import "fmt"

// MalformedRouteError reports a route record that cannot be loaded into the
// graph: a missing endpoint or a negative travel time. Fatal, surfaced
// before any search starts.
type MalformedRouteError struct {
	Edge    RouteEdge
	Message string
}

func (e *MalformedRouteError) Error() string {
	return fmt.Sprintf("malformed route %q -> %q (%d days): %s",
		e.Edge.Origin, e.Edge.Destination, e.Edge.TravelDays, e.Message)
}

func NewMalformedRouteError(edge RouteEdge, message string) *MalformedRouteError {
	return &MalformedRouteError{Edge: edge, Message: message}
}
