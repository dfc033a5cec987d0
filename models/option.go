package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Option group input types, as configured in the admin panel.
const (
	InputTypeSelect  = "select"  // plain list
	InputTypeColor   = "color"   // colour swatch
	InputTypeButtons = "buttons" // button group
)

// OptionGroup defines one facet dimension (e.g. Color, Size).
type OptionGroup struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null"`
	InputType string    `json:"input_type" gorm:"type:varchar(20);not null;default:'select';check:input_type IN ('select', 'color', 'buttons')"`
}

func (g *OptionGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OptionGroup) TableName() string {
	return "option_groups"
}

// OptionValue is one selectable value within a group (e.g. Red within Color).
type OptionValue struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	OptionGroupID uuid.UUID    `json:"option_group_id" gorm:"type:uuid;not null;index"`
	OptionGroup   *OptionGroup `json:"option_group,omitempty" gorm:"foreignKey:OptionGroupID;references:ID"`
	Label         string       `json:"label" gorm:"not null"`
	Value         string       `json:"value"`
	ColorHex      *string      `json:"color_hex,omitempty" gorm:"type:varchar(9)"`
	Sort          int          `json:"sort" gorm:"default:0"`
}

func (v *OptionValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OptionValue) TableName() string {
	return "option_values"
}

// GroupID returns the owning group id, preferring the embedded group.
func (v OptionValue) GroupID() uuid.UUID {
	if v.OptionGroup != nil && v.OptionGroup.ID != uuid.Nil {
		return v.OptionGroup.ID
	}
	return v.OptionGroupID
}

// VariantOptionValue places a variant in the option space.
type VariantOptionValue struct {
	VariantID     uuid.UUID `json:"variant_id" gorm:"type:uuid;primaryKey"`
	OptionValueID uuid.UUID `json:"option_value_id" gorm:"type:uuid;primaryKey;index"`
}

func (VariantOptionValue) TableName() string {
	return "variant_option_values"
}
