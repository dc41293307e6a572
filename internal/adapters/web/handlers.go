package web

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/loader"
	"github.com/andrescamacho/give-me-the-odds/internal/application/odds"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// maxEmpireDocumentBytes bounds uploaded empire documents.
const maxEmpireDocumentBytes = 1 << 20

// OddsHandler computes mission odds for uploaded empire documents.
type OddsHandler struct {
	Calculator *odds.Calculator
	Mission    mission.Spec
}

// oddsResponse is the JSON shape of a computed outcome.
type oddsResponse struct {
	Odds       float64        `json:"odds"`
	Percentage float64        `json:"percentage"`
	Encounters int            `json:"encounters"`
	Feasible   bool           `json:"feasible"`
	Path       []string       `json:"path,omitempty"`
	Schedule   []scheduleStop `json:"schedule,omitempty"`
}

type scheduleStop struct {
	Planet       string `json:"planet"`
	ArrivalDay   int    `json:"arrival_day"`
	DepartureDay int    `json:"departure_day"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Health reports service liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Compute handles POST /api/odds. The empire document comes either as a
// multipart upload under the field "empire" or as the raw request body.
func (h *OddsHandler) Compute(w http.ResponseWriter, r *http.Request) {
	body, err := empireDocumentBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer body.Close()

	threat, err := loader.ParseEmpire(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.Calculator.GiveMeTheOdds(r.Context(), h.Mission, threat)
	if err != nil {
		status := http.StatusInternalServerError
		var malformed *galaxy.MalformedRouteError
		var invalidMission *mission.InvalidMissionError
		var invalidThreat *mission.InvalidThreatError
		if errors.As(err, &malformed) || errors.As(err, &invalidMission) || errors.As(err, &invalidThreat) {
			status = http.StatusUnprocessableEntity
		}
		log.Printf("request_id=%s odds computation failed: %v", requestID(r.Context()), err)
		writeError(w, status, err.Error())
		return
	}

	resp := oddsResponse{
		Odds:       outcome.Odds,
		Percentage: outcome.Odds * 100,
		Encounters: outcome.Encounters,
		Feasible:   outcome.Feasible(),
	}
	for _, stop := range outcome.Schedule {
		resp.Path = append(resp.Path, string(stop.Location))
		resp.Schedule = append(resp.Schedule, scheduleStop{
			Planet:       string(stop.Location),
			ArrivalDay:   stop.ArrivalDay,
			DepartureDay: stop.DepartureDay,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// empireDocumentBody extracts the empire document from the request:
// multipart field "empire" when present, otherwise the raw body.
func empireDocumentBody(r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxEmpireDocumentBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxEmpireDocumentBytes); err != nil {
			return nil, errors.New("invalid multipart form")
		}
		file, _, err := r.FormFile("empire")
		if err != nil {
			return nil, errors.New("no empire document provided")
		}
		return file, nil
	}

	return r.Body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
