package db_models

import "github.com/lib/pq"

// User stores a user's name, email, password hash, number of POIs
// and scope (admin or user).
type User struct {
	BaseModel
	FirstName    string
	LastName     string
	Email        string `gorm:"unique;not null"`
	PasswordHash string

	// NumOfPoi is the denormalized count of POIs owned by this user.
	// It is mutated only by the POI create/delete workflows.
	NumOfPoi int

	Scope pq.StringArray `gorm:"type:text[]"`

	POIs []POI `gorm:"foreignKey:UserID"`
}
