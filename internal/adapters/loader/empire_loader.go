package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
)

// EmpireDocument mirrors the empire.json schema.
type EmpireDocument struct {
	Countdown     int              `json:"countdown" validate:"min=0"`
	BountyHunters []BountyHunterIn `json:"bounty_hunters" validate:"dive"`
}

// BountyHunterIn is one sighting record of the empire document.
type BountyHunterIn struct {
	Planet string `json:"planet" validate:"required"`
	Day    int    `json:"day" validate:"min=0"`
}

// LoadEmpire reads and validates an empire.json document from a file.
func LoadEmpire(path string) (mission.Threat, error) {
	f, err := os.Open(path)
	if err != nil {
		return mission.Threat{}, fmt.Errorf("failed to read empire document: %w", err)
	}
	defer f.Close()

	threat, err := ParseEmpire(f)
	if err != nil {
		return mission.Threat{}, fmt.Errorf("invalid empire document %s: %w", path, err)
	}
	return threat, nil
}

// ParseEmpire decodes an empire document from a stream. Used by the file
// loader and by the web layer for uploaded documents.
func ParseEmpire(r io.Reader) (mission.Threat, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mission.Threat{}, fmt.Errorf("failed to read empire document: %w", err)
	}

	var doc EmpireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return mission.Threat{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return mission.Threat{}, err
	}

	sightings := make([]mission.Sighting, 0, len(doc.BountyHunters))
	for _, bh := range doc.BountyHunters {
		sightings = append(sightings, mission.Sighting{
			Location: galaxy.Location(bh.Planet),
			Day:      bh.Day,
		})
	}

	return mission.Threat{Countdown: doc.Countdown, Sightings: sightings}, nil
}
