package catalog_filter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testID(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func idPtr(id uuid.UUID) *uuid.UUID { return &id }

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var (
	tenantID = testID(1)

	catLaptops = models.Category{ID: testID(10), StoreID: tenantID, Name: "Laptops", Slug: "laptops", Sort: 1, Active: true}
	catAudio   = models.Category{ID: testID(11), StoreID: tenantID, Name: "Audio", Slug: "audio", Sort: 2, Active: true}
	catEmpty   = models.Category{ID: testID(12), StoreID: tenantID, Name: "Monitores", Slug: "monitores", Sort: 3, Active: true}

	brandAsus = models.Brand{ID: testID(20), StoreID: tenantID, Name: "Asus", Slug: "asus", Active: true}
	brandSony = models.Brand{ID: testID(21), StoreID: tenantID, Name: "Sony", Slug: "sony", Active: true}

	groupColor = models.OptionGroup{ID: testID(30), StoreID: tenantID, Name: "Color", Slug: "color", InputType: models.InputTypeColor}
	groupSize  = models.OptionGroup{ID: testID(31), StoreID: tenantID, Name: "Talla", Slug: "talla", InputType: models.InputTypeButtons}

	red   = models.OptionValue{ID: testID(40), OptionGroupID: groupColor.ID, OptionGroup: &groupColor, Label: "Rojo", Value: "red", Sort: 1}
	blue  = models.OptionValue{ID: testID(41), OptionGroupID: groupColor.ID, OptionGroup: &groupColor, Label: "Azul", Value: "blue", Sort: 2}
	small = models.OptionValue{ID: testID(42), OptionGroupID: groupSize.ID, OptionGroup: &groupSize, Label: "S", Value: "s", Sort: 1}
	large = models.OptionValue{ID: testID(43), OptionGroupID: groupSize.ID, OptionGroup: &groupSize, Label: "L", Value: "l", Sort: 2}

	epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// P1 has no variants; P2 is sold as Red or Blue.
	p1 = models.Product{ID: testID(100), StoreID: tenantID, Name: "Laptop Pro", Slug: "laptop-pro", BasePrice: price("900"), CategoryID: idPtr(catLaptops.ID), BrandID: idPtr(brandAsus.ID), Active: true, CreatedAt: epoch.Add(2 * time.Hour)}
	p2 = models.Product{ID: testID(101), StoreID: tenantID, Name: "Audífonos", Slug: "audifonos", BasePrice: price("120"), CategoryID: idPtr(catAudio.ID), BrandID: idPtr(brandSony.ID), Active: true, CreatedAt: epoch.Add(time.Hour)}

	v1 = models.Variant{ID: testID(200), StoreID: tenantID, ProductID: p2.ID, SKU: "AUD-RED", Active: true}
	v2 = models.Variant{ID: testID(201), StoreID: tenantID, ProductID: p2.ID, SKU: "AUD-BLUE", Active: true}
)

// fakeRepository is an in-memory Repository counting every call.
type fakeRepository struct {
	mu sync.Mutex

	products   []models.Product
	categories []models.Category
	brands     []models.Brand
	variants   []models.Variant
	pivots     []models.VariantOptionValue
	values     []models.OptionValue

	catalogErr  error
	variantsErr error

	calls map[string]int
	// seen records the id sets each pipeline stage was called with
	seenProductIDs []ProductIDs
}

func scenarioRepository() *fakeRepository {
	return &fakeRepository{
		products:   []models.Product{p1, p2},
		categories: []models.Category{catLaptops, catAudio, catEmpty},
		brands:     []models.Brand{brandAsus, brandSony},
		variants:   []models.Variant{v1, v2},
		pivots: []models.VariantOptionValue{
			{VariantID: v1.ID, OptionValueID: red.ID},
			{VariantID: v2.ID, OptionValueID: blue.ID},
		},
		values: []models.OptionValue{red, blue},
		calls:  map[string]int{},
	}
}

func (r *fakeRepository) count(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[op]++
}

func (r *fakeRepository) callCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeRepository) FetchCatalog(ctx context.Context, tenant uuid.UUID, search string) (*Catalog, error) {
	r.count("catalog")
	if r.catalogErr != nil {
		return nil, r.catalogErr
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	products := []models.Product{}
	refs := []ProductRef{}
	for _, p := range r.products {
		if !p.Active || p.StoreID != tenant {
			continue
		}
		refs = append(refs, ProductRef{CategoryID: p.CategoryID, BrandID: p.BrandID})
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) && !strings.Contains(strings.ToLower(p.Slug), needle) {
			continue
		}
		products = append(products, p)
	}
	return &Catalog{
		Products:   products,
		Categories: KeepUsedCategories(r.categories, refs),
		Brands:     KeepUsedBrands(r.brands, refs),
	}, nil
}

func (r *fakeRepository) FetchVariants(ctx context.Context, tenant uuid.UUID, productIDs ProductIDs) ([]models.Variant, error) {
	r.count("variants")
	r.mu.Lock()
	r.seenProductIDs = append(r.seenProductIDs, productIDs)
	r.mu.Unlock()
	if r.variantsErr != nil {
		return nil, r.variantsErr
	}
	wanted := map[uuid.UUID]bool{}
	for _, id := range productIDs {
		wanted[id] = true
	}
	out := []models.Variant{}
	for _, v := range r.variants {
		if v.Active && wanted[v.ProductID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeRepository) FetchVariantOptionPivot(ctx context.Context, variantIDs VariantIDs) ([]models.VariantOptionValue, error) {
	r.count("pivot")
	wanted := map[uuid.UUID]bool{}
	for _, id := range variantIDs {
		wanted[id] = true
	}
	out := []models.VariantOptionValue{}
	for _, row := range r.pivots {
		if wanted[row.VariantID] {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeRepository) FetchOptionValues(ctx context.Context, valueIDs OptionValueIDs) ([]models.OptionValue, error) {
	r.count("values")
	wanted := map[uuid.UUID]bool{}
	for _, id := range valueIDs {
		wanted[id] = true
	}
	out := []models.OptionValue{}
	for _, v := range r.values {
		if wanted[v.ID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func productIDs(products []models.Product) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sameIDs(got, want []uuid.UUID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
