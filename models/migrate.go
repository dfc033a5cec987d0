package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every catalog table, parents first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Store{},
		&Category{},
		&Brand{},
		&OptionGroup{},
		&OptionValue{},
		&Product{},
		&ProductMedia{},
		&Variant{},
		&VariantOptionValue{},
	)
}
