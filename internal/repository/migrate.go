package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the project and party tables. No foreign keys
// are declared between them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&engineerModel{},
		&managerModel{},
		&architectModel{},
		&customerModel{},
		&projectModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
