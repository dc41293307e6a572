package mission

import "fmt"

// InvalidMissionError reports a mission document that cannot be optimized:
// unknown departure/arrival, non-positive autonomy, or a negative
// departure day. Fatal, surfaced before any search starts.
type InvalidMissionError struct {
	Field   string
	Message string
}

func (e *InvalidMissionError) Error() string {
	return fmt.Sprintf("invalid mission: %s: %s", e.Field, e.Message)
}

func NewInvalidMissionError(field, message string) *InvalidMissionError {
	return &InvalidMissionError{Field: field, Message: message}
}

// InvalidThreatError reports a threat document with a negative countdown or
// malformed sighting records. Fatal, surfaced before any search starts.
type InvalidThreatError struct {
	Field   string
	Message string
}

func (e *InvalidThreatError) Error() string {
	return fmt.Sprintf("invalid threat: %s: %s", e.Field, e.Message)
}

func NewInvalidThreatError(field, message string) *InvalidThreatError {
	return &InvalidThreatError{Field: field, Message: message}
}
