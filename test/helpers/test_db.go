package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/give-me-the-odds/internal/adapters/persistence"
	"github.com/andrescamacho/give-me-the-odds/internal/domain/galaxy"
	"github.com/andrescamacho/give-me-the-odds/internal/infrastructure/database"
)

// NewTestDB creates an isolated in-memory database with migrations applied
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}

// SeedRoutes saves route records into a test database
func SeedRoutes(t *testing.T, db *gorm.DB, edges []galaxy.RouteEdge) {
	t.Helper()

	repo := persistence.NewGormRouteRepository(db)
	if err := repo.Save(context.Background(), edges); err != nil {
		t.Fatalf("failed to seed routes: %v", err)
	}
}

// CanonicalUniverse returns the route records of the reference universe
// used across tests: Tatooine, Dagobah, Hoth, and Endor.
func CanonicalUniverse() []galaxy.RouteEdge {
	return []galaxy.RouteEdge{
		{Origin: "Tatooine", Destination: "Dagobah", TravelDays: 6},
		{Origin: "Dagobah", Destination: "Endor", TravelDays: 4},
		{Origin: "Dagobah", Destination: "Hoth", TravelDays: 1},
		{Origin: "Hoth", Destination: "Endor", TravelDays: 1},
		{Origin: "Tatooine", Destination: "Hoth", TravelDays: 6},
	}
}
