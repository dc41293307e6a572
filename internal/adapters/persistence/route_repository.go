package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
)

// GormRouteRepository loads route records from a universe database using GORM
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// ListAll retrieves every route record. Parallel routes between the same
// pair of locations are returned as-is, one record each.
func (r *GormRouteRepository) ListAll(ctx context.Context) ([]galaxy.RouteEdge, error) {
	var models []RouteModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list routes: %w", result.Error)
	}

	edges := make([]galaxy.RouteEdge, 0, len(models))
	for _, model := range models {
		edges = append(edges, galaxy.RouteEdge{
			Origin:      galaxy.Location(model.Origin),
			Destination: galaxy.Location(model.Destination),
			TravelDays:  model.TravelTime,
		})
	}

	return edges, nil
}

// Save persists route records, used by the importer and by tests to seed
// in-memory databases.
func (r *GormRouteRepository) Save(ctx context.Context, edges []galaxy.RouteEdge) error {
	for _, edge := range edges {
		model := RouteModel{
			Origin:      string(edge.Origin),
			Destination: string(edge.Destination),
			TravelTime:  edge.TravelDays,
		}
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save route %s -> %s: %w", edge.Origin, edge.Destination, err)
		}
	}
	return nil
}
