package db

import (
	"github.com/librarium-dev/librarium/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func MigrateDatabase(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Token{},
		&models.Publisher{},
		&models.Author{},
		&models.Genre{},
		&models.Book{},
		&models.BookAuthor{},
		&models.BookGenre{},
		&models.Comment{},
		&models.Report{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
