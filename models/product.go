package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlaceholderImage is shown when a product has no media rows.
const PlaceholderImage = "https://placehold.co/900x900?text=Producto"

// ═══════════════════════════════════════════════════════════
// Product (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID           `json:"store_id" gorm:"type:uuid;not null;index:idx_products_store_active"`
	Name        string              `json:"name" gorm:"not null;index"`
	Slug        string              `json:"slug" gorm:"not null;index"`
	ShortDesc   string              `json:"short_desc"`
	Description string              `json:"description,omitempty"`
	Specs       datatypes.JSON      `json:"specs,omitempty" gorm:"type:jsonb;not null;default:'{}'"`
	BasePrice   decimal.NullDecimal `json:"base_price" gorm:"type:numeric(12,2)"`
	CategoryID  *uuid.UUID          `json:"category_id,omitempty" gorm:"type:uuid;index"`
	BrandID     *uuid.UUID          `json:"brand_id,omitempty" gorm:"type:uuid;index"`
	Active      bool                `json:"active" gorm:"not null;default:true;index:idx_products_store_active"`
	Media       []ProductMedia      `json:"media,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time           `json:"created_at" gorm:"autoCreateTime;index:idx_products_created,sort:desc"`
	UpdatedAt   time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// SortedMedia returns a copy of the media ordered by sort ascending.
func (p Product) SortedMedia() []ProductMedia {
	out := make([]ProductMedia, len(p.Media))
	copy(out, p.Media)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sort < out[j].Sort })
	return out
}

// PrimaryImage returns the url of the lowest-sorted media row.
func (p Product) PrimaryImage() string {
	media := p.SortedMedia()
	if len(media) == 0 || media[0].URL == "" {
		return PlaceholderImage
	}
	return media[0].URL
}

type ProductMedia struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	VariantID *uuid.UUID `json:"variant_id,omitempty" gorm:"type:uuid"`
	URL       string     `json:"url" gorm:"not null"`
	Alt       string     `json:"alt"`
	Sort      int        `json:"sort" gorm:"default:0"`
}

func (m *ProductMedia) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (ProductMedia) TableName() string {
	return "product_media"
}

// ═══════════════════════════════════════════════════════════
// Variant (GORM)
// ═══════════════════════════════════════════════════════════

// Variant is one sellable combination of a product's options.
type Variant struct {
	ID        uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID           `json:"store_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID           `json:"product_id" gorm:"type:uuid;not null;index"`
	SKU       string              `json:"sku"`
	Price     decimal.NullDecimal `json:"price" gorm:"type:numeric(12,2)"`
	Stock     int                 `json:"stock" gorm:"default:0"`
	Active    bool                `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time           `json:"created_at" gorm:"autoCreateTime"`
}

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Variant) TableName() string {
	return "variants"
}
