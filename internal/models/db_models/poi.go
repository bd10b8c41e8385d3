package db_models

import "github.com/google/uuid"

// POI stores a point of interest's name, description, location
// (latitude and longitude) and references to the user, category
// and images it is associated with.
type POI struct {
	BaseModel
	Name        string
	Description string
	Latitude    float64
	Longitude   float64

	UserID uuid.UUID
	User   User

	// CategoryID is nullable: a POI survives its category only if it
	// never referenced one. Category deletion cascades by policy.
	CategoryID *uuid.UUID
	Category   *Category

	Images []Image `gorm:"foreignKey:POIID"`
}
