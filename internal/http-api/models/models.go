package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the tool and rating tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Tool{},
		&Rating{},
	)
}
