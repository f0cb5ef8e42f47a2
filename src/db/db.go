package db

import (
	"os"

	"shareit/src/config"
	"shareit/src/lib"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	_db, err := gorm.Open(openDialector())
	if err != nil {
		lib.Logger().Fatal().Err(err).Msg("Error connecting to database")
	}
	sqlDB, err := _db.DB()
	if err != nil {
		lib.Logger().Fatal().Err(err).Msg("Error establishing connection to database")
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	db = _db
	return _db
}

func openDialector() gorm.Dialector {
	if os.Getenv("DATABASE_DRIVER") == "sqlite" {
		path := os.Getenv("DATABASE_PATH")
		if path == "" {
			path = "shareit.db"
		}
		return sqlite.Open(path)
	}
	return postgres.Open(config.GetDSN())
}

func NewDB(newdb *gorm.DB) {
	db = newdb
}
