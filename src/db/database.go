package db

import (
	"fmt"
	"log"

	"github.com/formpilot/formpilot/src/config"
	"github.com/formpilot/formpilot/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	dropViews()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.Submission{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	createViews()

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func dropViews() {
	views := []string{
		"form_submission_counts",
	}

	for _, view := range views {
		if err := DB.Exec(fmt.Sprintf("DROP VIEW IF EXISTS %s CASCADE", view)).Error; err != nil {
			log.Printf("Failed to drop view %s: %v", view, err)
		}
	}
}

func createViews() {
	views := []string{
		`CREATE OR REPLACE VIEW form_submission_counts AS
		SELECT
		f.id AS form_id,
		COUNT(s.id) AS count
		FROM forms f
		LEFT JOIN submissions s ON s.form_id = f.id AND s.deleted_at IS NULL
		WHERE f.deleted_at IS NULL
		GROUP BY f.id;`,
	}

	for _, view := range views {
		if err := DB.Exec(view).Error; err != nil {
			log.Printf("Failed to create view: %v", err)
		}
	}
}
