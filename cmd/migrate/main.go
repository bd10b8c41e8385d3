package main

import (
	"log"

	"github.com/joho/godotenv"

	"placemark/internal/infra"
	"placemark/internal/models/db_models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Category{},
		&db_models.POI{},
		&db_models.Image{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed")
}
