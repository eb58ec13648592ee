package config

import (
	"github.com/hazelhedmine/elememory-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the three collections.
func Connect(dbURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Deck{}, &models.Card{}); err != nil {
		return nil, err
	}

	return db, nil
}
