package db

import (
	"github.com/decklab-dev/decklab/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is constructed once at
// startup and passed explicitly to whoever needs it.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates the decks and cards tables if they are missing. The cascade
// from decks to cards lives in the schema, not in application code.
func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.Deck{},
		&models.Card{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
