package db_models

import "github.com/google/uuid"

// Image stores an image's blob-store handle, its public URL and a
// back-reference to the POI it belongs to.
type Image struct {
	BaseModel
	PublicID string
	URL      string
	POIID    uuid.UUID `gorm:"column:poi_id;type:uuid;index"`
}
