package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Vigneshwaren333/LexComply/config"
	"github.com/Vigneshwaren333/LexComply/models"
)

// Database wraps the gorm handle so it can be opened in main, passed to
// every handler, and closed at shutdown instead of living in a package
// global.
type Database struct {
	*gorm.DB
}

// Open opens a database through the given dialector and migrates the
// schema. TranslateError is on so unique-index violations come back as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RTIApplication{},
		&models.CyberlawApplication{},
		&models.Consultation{},
		&models.ComplianceAssessment{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

// Connect opens the Postgres database from config.
func Connect(cfg *config.Config) (*Database, error) {
	return Open(postgres.Open(cfg.DSN()))
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
