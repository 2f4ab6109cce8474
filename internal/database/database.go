package database

import (
	"github.com/rs/zerolog/log"
	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = db.AutoMigrate(&models.Registration{}, &models.RegistrationHistory{}, &models.APIKey{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	return db
}
