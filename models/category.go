package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products inside one store.
type Category struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"not null"`
	Slug    string    `json:"slug" gorm:"not null;index"`
	Sort    int       `json:"sort" gorm:"default:0"`
	Active  bool      `json:"active" gorm:"not null;default:true"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Brand has no sort column; storefront lists are ordered by name.
type Brand struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	Name    string    `json:"name" gorm:"not null"`
	Slug    string    `json:"slug" gorm:"not null;index"`
	Active  bool      `json:"active" gorm:"not null;default:true"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Brand) TableName() string {
	return "brands"
}
