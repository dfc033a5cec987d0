package main

import (
	"errors"
	"fmt"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedSummary struct {
	products int
	variants int
}

type demoVariant struct {
	sku    string
	price  string // empty means the product price
	stock  int
	values []string // option value keys
}

type demoProduct struct {
	name, slug, short string
	price             string // empty means "Precio a consultar"
	category, brand   string
	specs             string
	images            []string
	variants          []demoVariant
}

var demoCategories = []models.Category{
	{Name: "Laptops", Slug: "laptops", Sort: 1},
	{Name: "Audio", Slug: "audio", Sort: 2},
	{Name: "Accesorios", Slug: "accesorios", Sort: 3},
	{Name: "Monitores", Slug: "monitores", Sort: 4}, // no products, hidden on the shop
}

var demoBrands = []models.Brand{
	{Name: "Asus", Slug: "asus"},
	{Name: "Logitech", Slug: "logitech"},
	{Name: "Sony", Slug: "sony"},
}

func hex(s string) *string { return &s }

// option groups and their values, keyed "<group>/<value>"
var demoOptions = []struct {
	group  models.OptionGroup
	values []models.OptionValue
}{
	{
		group: models.OptionGroup{Name: "Color", Slug: "color", InputType: models.InputTypeColor},
		values: []models.OptionValue{
			{Label: "Negro", Value: "negro", ColorHex: hex("#111118"), Sort: 1},
			{Label: "Blanco", Value: "blanco", ColorHex: hex("#f5f5f5"), Sort: 2},
			{Label: "Azul", Value: "azul", ColorHex: hex("#2b59c3"), Sort: 3},
		},
	},
	{
		group: models.OptionGroup{Name: "Almacenamiento", Slug: "almacenamiento", InputType: models.InputTypeButtons},
		values: []models.OptionValue{
			{Label: "512 GB", Value: "512gb", Sort: 1},
			{Label: "1 TB", Value: "1tb", Sort: 2},
		},
	},
	{
		group: models.OptionGroup{Name: "Conexión", Slug: "conexion", InputType: models.InputTypeSelect},
		values: []models.OptionValue{
			{Label: "Bluetooth", Value: "bluetooth", Sort: 1},
			{Label: "USB", Value: "usb", Sort: 2},
		},
	},
}

var demoProducts = []demoProduct{
	{
		name: "Laptop Zenbook 14", slug: "laptop-zenbook-14", short: "OLED 14\", 16 GB RAM",
		price: "7499.00", category: "laptops", brand: "asus",
		specs:  `{"pantalla":"14\" OLED","ram":"16 GB"}`,
		images: []string{"https://placehold.co/900x900?text=Zenbook"},
		variants: []demoVariant{
			{sku: "ZB14-512-AZ", stock: 4, values: []string{"color/azul", "almacenamiento/512gb"}},
			{sku: "ZB14-1TB-AZ", price: "8299.00", stock: 2, values: []string{"color/azul", "almacenamiento/1tb"}},
		},
	},
	{
		name: "Audífonos WH-1000XM5", slug: "audifonos-wh-1000xm5", short: "Cancelación de ruido",
		price: "2899.00", category: "audio", brand: "sony",
		specs: `{"bateria":"30 h"}`,
		variants: []demoVariant{
			{sku: "XM5-NEG", stock: 6, values: []string{"color/negro", "conexion/bluetooth"}},
			{sku: "XM5-BLA", stock: 3, values: []string{"color/blanco", "conexion/bluetooth"}},
		},
	},
	{
		name: "Mouse MX Master 3S", slug: "mouse-mx-master-3s", short: "Ergonómico, silencioso",
		price: "899.00", category: "accesorios", brand: "logitech",
		variants: []demoVariant{
			{sku: "MX3S-NEG-BT", stock: 10, values: []string{"color/negro", "conexion/bluetooth"}},
			{sku: "MX3S-BLA-USB", stock: 0, values: []string{"color/blanco", "conexion/usb"}},
		},
	},
	{
		name: "Base refrigerante", slug: "base-refrigerante", short: "Para laptops de hasta 17\"",
		category: "accesorios",
	},
}

func resetStore(db *gorm.DB, slug string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		err := tx.Where("slug = ?", slug).First(&store).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		productIDs := tx.Model(&models.Product{}).Select("id").Where("store_id = ?", store.ID)
		variantIDs := tx.Model(&models.Variant{}).Select("id").Where("store_id = ?", store.ID)
		groupIDs := tx.Model(&models.OptionGroup{}).Select("id").Where("store_id = ?", store.ID)

		steps := []func() error{
			func() error {
				return tx.Where("variant_id IN (?)", variantIDs).Delete(&models.VariantOptionValue{}).Error
			},
			func() error { return tx.Where("product_id IN (?)", productIDs).Delete(&models.ProductMedia{}).Error },
			func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Variant{}).Error },
			func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Product{}).Error },
			func() error { return tx.Where("option_group_id IN (?)", groupIDs).Delete(&models.OptionValue{}).Error },
			func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.OptionGroup{}).Error },
			func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Brand{}).Error },
			func() error { return tx.Where("store_id = ?", store.ID).Delete(&models.Category{}).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return fmt.Errorf("reset %s: %w", slug, err)
			}
		}
		return nil
	})
}

func seedStore(db *gorm.DB, slug string) (seedSummary, error) {
	var summary seedSummary

	err := db.Transaction(func(tx *gorm.DB) error {
		store := models.Store{Slug: slug, Name: "Tech Boutique", Currency: "BOB", Locale: "es", Active: true}
		if err := tx.Where("slug = ?", slug).FirstOrCreate(&store).Error; err != nil {
			return fmt.Errorf("store: %w", err)
		}

		var existing int64
		if err := tx.Model(&models.Product{}).Where("store_id = ?", store.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("store %q already has %d products, use --reset", slug, existing)
		}

		categories := map[string]uuid.UUID{}
		for _, c := range demoCategories {
			c.StoreID, c.Active = store.ID, true
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("category %s: %w", c.Slug, err)
			}
			categories[c.Slug] = c.ID
		}

		brands := map[string]uuid.UUID{}
		for _, b := range demoBrands {
			b.StoreID, b.Active = store.ID, true
			if err := tx.Create(&b).Error; err != nil {
				return fmt.Errorf("brand %s: %w", b.Slug, err)
			}
			brands[b.Slug] = b.ID
		}

		values := map[string]uuid.UUID{}
		for _, opt := range demoOptions {
			group := opt.group
			group.StoreID = store.ID
			if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("option group %s: %w", group.Slug, err)
			}
			for _, v := range opt.values {
				v.OptionGroupID = group.ID
				if err := tx.Create(&v).Error; err != nil {
					return fmt.Errorf("option value %s/%s: %w", group.Slug, v.Value, err)
				}
				values[group.Slug+"/"+v.Value] = v.ID
			}
		}

		for _, dp := range demoProducts {
			product := models.Product{
				StoreID:   store.ID,
				Name:      dp.name,
				Slug:      dp.slug,
				ShortDesc: dp.short,
				BasePrice: nullPrice(dp.price),
				Specs:     datatypes.JSON(`{}`),
				Active:    true,
			}
			if dp.specs != "" {
				product.Specs = datatypes.JSON(dp.specs)
			}
			if id, ok := categories[dp.category]; ok {
				product.CategoryID = &id
			}
			if id, ok := brands[dp.brand]; ok {
				product.BrandID = &id
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("product %s: %w", dp.slug, err)
			}
			summary.products++

			for i, url := range dp.images {
				media := models.ProductMedia{ProductID: product.ID, URL: url, Alt: dp.name, Sort: i}
				if err := tx.Create(&media).Error; err != nil {
					return fmt.Errorf("media %s: %w", dp.slug, err)
				}
			}

			for _, dv := range dp.variants {
				variant := models.Variant{
					StoreID:   store.ID,
					ProductID: product.ID,
					SKU:       dv.sku,
					Price:     nullPrice(dv.price),
					Stock:     dv.stock,
					Active:    true,
				}
				if err := tx.Create(&variant).Error; err != nil {
					return fmt.Errorf("variant %s: %w", dv.sku, err)
				}
				summary.variants++

				for _, key := range dv.values {
					valueID, ok := values[key]
					if !ok {
						return fmt.Errorf("variant %s: unknown option value %q", dv.sku, key)
					}
					pivot := models.VariantOptionValue{VariantID: variant.ID, OptionValueID: valueID}
					if err := tx.Create(&pivot).Error; err != nil {
						return fmt.Errorf("variant %s option %s: %w", dv.sku, key, err)
					}
				}
			}
		}
		return nil
	})
	return summary, err
}

func nullPrice(raw string) decimal.NullDecimal {
	if raw == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.RequireFromString(raw))
}
