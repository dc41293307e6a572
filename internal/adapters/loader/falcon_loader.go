package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/mission"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/database"
)

// FalconDocument mirrors the millennium-falcon.json schema.
type FalconDocument struct {
	Autonomy     int    `json:"autonomy" validate:"required,gt=0"`
	Departure    string `json:"departure" validate:"required"`
	Arrival      string `json:"arrival" validate:"required"`
	RoutesDB     string `json:"routes_db" validate:"required"`
	DepartureDay int    `json:"departure_day" validate:"min=0"`
}

// FalconInput is a parsed falcon document: the mission spec plus the
// resolved universe database connection settings.
type FalconInput struct {
	Mission  mission.Spec
	Database database.Config
}

var validate = validator.New()

// LoadFalcon reads and validates a millennium-falcon.json document.
// A relative routes_db path is resolved against the document's directory;
// a postgres:// URL selects the postgres driver instead.
func LoadFalcon(path string) (*FalconInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read falcon document: %w", err)
	}

	var doc FalconDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid falcon document %s: %w", path, err)
	}

	return &FalconInput{
		Mission: mission.Spec{
			Autonomy:     doc.Autonomy,
			Departure:    galaxy.Location(doc.Departure),
			Arrival:      galaxy.Location(doc.Arrival),
			DepartureDay: doc.DepartureDay,
		},
		Database: resolveRoutesDB(doc.RoutesDB, filepath.Dir(path)),
	}, nil
}

// resolveRoutesDB maps the routes_db field to connection settings.
func resolveRoutesDB(routesDB, baseDir string) database.Config {
	if strings.HasPrefix(routesDB, "postgres://") || strings.HasPrefix(routesDB, "postgresql://") {
		return database.Config{Type: "postgres", URL: routesDB}
	}

	path := routesDB
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return database.Config{Type: "sqlite", Path: path}
}
