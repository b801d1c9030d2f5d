package model

import "gorm.io/gorm"

// Migrate creates the items and monsters tables if they do not exist yet.
// There is no versioned migration system, the schema is declared by the
// structs above.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Item{},
		&Monster{})
}
