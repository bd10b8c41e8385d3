package db_models

// Category represents a POI category as a separate table
// with a UUID primary key and a Name field. Names are stored
// upper-cased; uniqueness is case-insensitive and checked at
// creation time.
type Category struct {
	BaseModel
	Name string `gorm:"unique;not null"`
	POIs []POI  `gorm:"foreignKey:CategoryID"`
}
