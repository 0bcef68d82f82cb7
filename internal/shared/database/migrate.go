package database

import (
	"cinebook/internal/orders"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orders.Order{},
	)
}
