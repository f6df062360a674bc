package client

import (
	"log"
	"pix-recovery/internal/model"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSqliteClient(databasePath string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// sqlite takes a file-wide write lock, so a single connection
	// keeps concurrent webhook upserts from hitting SQLITE_BUSY
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.AbandonedCart{},
		&model.PixTransaction{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
