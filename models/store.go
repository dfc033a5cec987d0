package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is a tenant; every catalog row belongs to exactly one store.
type Store struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex" db:"slug"`
	Name      string    `json:"name" gorm:"not null" db:"name"`
	Currency  string    `json:"currency" gorm:"type:varchar(3);not null;default:'BOB'" db:"currency"`
	Locale    string    `json:"locale" gorm:"type:varchar(16);not null;default:'es'" db:"locale"`
	Active    bool      `json:"active" gorm:"not null;default:true" db:"active"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Store) TableName() string {
	return "stores"
}
