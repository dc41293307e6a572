package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// outcomeView is the JSON shape of a computed outcome.
type outcomeView struct {
	Odds       float64    `json:"odds"`
	Percentage float64    `json:"percentage"`
	Encounters int        `json:"encounters"`
	Feasible   bool       `json:"feasible"`
	Path       []string   `json:"path,omitempty"`
	Schedule   []stopView `json:"schedule,omitempty"`
}

type stopView struct {
	Planet       string `json:"planet"`
	ArrivalDay   int    `json:"arrival_day"`
	DepartureDay int    `json:"departure_day"`
}

func newOutcomeView(outcome mission.Outcome) outcomeView {
	view := outcomeView{
		Odds:       outcome.Odds,
		Percentage: outcome.Odds * 100,
		Encounters: outcome.Encounters,
		Feasible:   outcome.Feasible(),
	}
	for _, stop := range outcome.Schedule {
		view.Path = append(view.Path, string(stop.Location))
		view.Schedule = append(view.Schedule, stopView{
			Planet:       string(stop.Location),
			ArrivalDay:   stop.ArrivalDay,
			DepartureDay: stop.DepartureDay,
		})
	}
	return view
}

// renderOutcome writes the outcome in the requested format.
func renderOutcome(w io.Writer, outcome mission.Outcome, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newOutcomeView(outcome))

	case "text":
		fmt.Fprintf(w, "Success probability: %.1f%%\n", outcome.Odds*100)
		if !outcome.Feasible() {
			fmt.Fprintln(w, "No feasible path reaches the destination before the countdown.")
			return nil
		}

		route := make([]string, len(outcome.Schedule))
		for i, stop := range outcome.Schedule {
			route[i] = string(stop.Location)
		}
		fmt.Fprintf(w, "Itinerary: %s\n", strings.Join(route, " -> "))
		for _, stop := range outcome.Schedule {
			if wait := stop.Wait(); wait > 0 {
				fmt.Fprintf(w, "  %-12s arrive day %d, wait %d day(s), depart day %d\n",
					stop.Location, stop.ArrivalDay, wait, stop.DepartureDay)
			} else {
				fmt.Fprintf(w, "  %-12s day %d\n", stop.Location, stop.ArrivalDay)
			}
		}
		fmt.Fprintf(w, "Encounters with bounty hunters: %d\n", outcome.Encounters)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
