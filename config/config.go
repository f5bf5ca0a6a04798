package config

import (
	"fmt"
	"log"
	"os"

	"github.com/nst-sdc/Diet-Planner/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB loads .env (if present), connects to Postgres, and migrates the
// schema. The returned handle is constructed once at startup and injected
// into the store.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.CustomFood{},
		&models.LoggedMeal{},
		&models.Meal{},
		&models.PlannedMeal{},
		&models.DailyGoal{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
