package persistence

// RouteModel represents the routes table of a universe database.
// External schema: origin name, destination name, integer travel time.
type RouteModel struct {
	Origin      string `gorm:"column:origin;primaryKey"`
	Destination string `gorm:"column:destination;primaryKey"`
	TravelTime  int    `gorm:"column:travel_time;primaryKey"`
}

func (RouteModel) TableName() string {
	return "routes"
}
