package boot

import (
	"shareit/src/db"
	"shareit/src/lib"
	"shareit/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	)
	if err != nil {
		lib.Logger().Fatal().Err(err).Msg("error migration")
	}

	return db
}
