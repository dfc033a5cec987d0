package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps the SQL of every query GORM builds in dry-run mode and
// can fail the statements issued against a table.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
	fail       map[string]error
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	if err, ok := r.fail[tx.Statement.Table]; ok {
		_ = tx.AddError(err)
	}
}

// find returns the first statement containing every fragment.
func (r *sqlRecorder) find(fragments ...string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
next:
	for _, stmt := range r.statements {
		for _, f := range fragments {
			if !strings.Contains(stmt, f) {
				continue next
			}
		}
		return stmt, true
	}
	return "", false
}

func (r *sqlRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.statements)
}

func dryRunRepository(t *testing.T, limit int) (*CatalogRepository, *sqlRecorder) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=catalog dbname=catalog sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	rec := &sqlRecorder{fail: map[string]error{}}
	if err := db.Callback().Query().After("gorm:query").Register("catalog:record_sql", rec.record); err != nil {
		t.Fatalf("register recorder: %v", err)
	}
	return NewCatalogRepository(db, limit), rec
}

var sqlStoreID = uuid.MustParse("0190a4a0-0000-7000-8000-000000000001")

func mustFind(t *testing.T, rec *sqlRecorder, fragments ...string) string {
	t.Helper()
	stmt, ok := rec.find(fragments...)
	if !ok {
		t.Fatalf("no statement contains %q\nrecorded: %q", fragments, rec.statements)
	}
	return stmt
}

func TestFetchCatalogSQL(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	store := "'" + sqlStoreID.String() + "'"

	catalog, err := repo.FetchCatalog(context.Background(), sqlStoreID, " 50%_off ")
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}

	products := mustFind(t, rec, `SELECT * FROM "products"`, "ILIKE")
	for _, want := range []string{
		"store_id = " + store + " AND active = true",
		`name ILIKE '%50\%\_off%' OR slug ILIKE '%50\%\_off%'`,
		"ORDER BY created_at DESC",
		"LIMIT 500",
	} {
		if !strings.Contains(products, want) {
			t.Errorf("products query missing %q: %s", want, products)
		}
	}

	refs := mustFind(t, rec, "SELECT category_id, brand_id FROM \"products\"")
	if !strings.Contains(refs, "store_id = "+store+" AND active = true") {
		t.Errorf("references query not scoped: %s", refs)
	}
	if strings.Contains(refs, "ILIKE") || strings.Contains(refs, "LIMIT") {
		t.Errorf("references query must ignore search and limit: %s", refs)
	}

	categories := mustFind(t, rec, `FROM "categories"`)
	if !strings.Contains(categories, "store_id = "+store+" AND active = true") || !strings.Contains(categories, "ORDER BY sort ASC, name ASC") {
		t.Errorf("categories query: %s", categories)
	}

	brands := mustFind(t, rec, `FROM "brands"`)
	if !strings.Contains(brands, "store_id = "+store+" AND active = true") || !strings.Contains(brands, "ORDER BY name ASC") {
		t.Errorf("brands query: %s", brands)
	}

	locale := mustFind(t, rec, `FROM "stores"`)
	if !strings.Contains(locale, "locale") || !strings.Contains(locale, "id = "+store) || !strings.Contains(locale, "LIMIT 1") {
		t.Errorf("locale query: %s", locale)
	}

	if catalog.Products == nil || len(catalog.Products) != 0 {
		t.Fatalf("expected an empty product list, got %v", catalog.Products)
	}
	if catalog.Locale != catalog_filter.DefaultLocale {
		t.Fatalf("missing store locale should fall back, got %v", catalog.Locale)
	}
}

func TestFetchCatalogSQLWithoutSearch(t *testing.T) {
	repo, rec := dryRunRepository(t, 25)

	if _, err := repo.FetchCatalog(context.Background(), sqlStoreID, "   "); err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}

	products := mustFind(t, rec, `SELECT * FROM "products"`, "ORDER BY created_at DESC")
	if strings.Contains(products, "ILIKE") {
		t.Errorf("blank search must not filter: %s", products)
	}
	if !strings.Contains(products, "LIMIT 25") {
		t.Errorf("custom limit not applied: %s", products)
	}
}

func TestFetchCatalogSQLFailure(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	rec.fail["brands"] = errors.New("relation does not exist")

	_, err := repo.FetchCatalog(context.Background(), sqlStoreID, "")

	var repoErr *catalog_filter.RepositoryError
	if !errors.As(err, &repoErr) || repoErr.Op != "fetch brands" {
		t.Fatalf("expected fetch brands RepositoryError, got %v", err)
	}
}

func TestVariantPipelineSQL(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	ctx := context.Background()
	a := uuid.MustParse("0190a4a0-0000-7000-8000-00000000000a")
	b := uuid.MustParse("0190a4a0-0000-7000-8000-00000000000b")
	in := "('" + a.String() + "','" + b.String() + "')"

	if _, err := repo.FetchVariants(ctx, sqlStoreID, catalog_filter.ProductIDs{a, b}); err != nil {
		t.Fatalf("FetchVariants: %v", err)
	}
	variants := mustFind(t, rec, `FROM "variants"`)
	for _, want := range []string{
		"store_id = '" + sqlStoreID.String() + "'",
		"product_id IN " + in,
		"active = true",
		"ORDER BY created_at ASC",
	} {
		if !strings.Contains(variants, want) {
			t.Errorf("variants query missing %q: %s", want, variants)
		}
	}

	if _, err := repo.FetchVariantOptionPivot(ctx, catalog_filter.VariantIDs{a, b}); err != nil {
		t.Fatalf("FetchVariantOptionPivot: %v", err)
	}
	mustFind(t, rec, `FROM "variant_option_values"`, "variant_id IN "+in)

	if _, err := repo.FetchOptionValues(ctx, catalog_filter.OptionValueIDs{a, b}); err != nil {
		t.Fatalf("FetchOptionValues: %v", err)
	}
	mustFind(t, rec, `FROM "option_values"`, "id IN "+in, "ORDER BY sort ASC")
}

func TestVariantPipelineSkipsEmptyIDs(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	ctx := context.Background()

	if v, err := repo.FetchVariants(ctx, sqlStoreID, nil); err != nil || v == nil {
		t.Fatalf("FetchVariants(nil) = %v, %v", v, err)
	}
	if p, err := repo.FetchVariantOptionPivot(ctx, nil); err != nil || p == nil {
		t.Fatalf("FetchVariantOptionPivot(nil) = %v, %v", p, err)
	}
	if o, err := repo.FetchOptionValues(ctx, nil); err != nil || o == nil {
		t.Fatalf("FetchOptionValues(nil) = %v, %v", o, err)
	}
	if n := rec.count(); n != 0 {
		t.Fatalf("expected no queries, got %d", n)
	}
}

func TestFetchVariantsSQLFailure(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	rec.fail["variants"] = errors.New("canceling statement due to statement timeout")

	_, err := repo.FetchVariants(context.Background(), sqlStoreID, catalog_filter.ProductIDs{sqlStoreID})

	var repoErr *catalog_filter.RepositoryError
	if !errors.As(err, &repoErr) || repoErr.Op != "fetch variants" {
		t.Fatalf("expected fetch variants RepositoryError, got %v", err)
	}
}

func TestFindProductBySlugSQL(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)

	if _, err := repo.FindProductBySlug(context.Background(), sqlStoreID, "audifonos"); err != nil {
		t.Fatalf("FindProductBySlug: %v", err)
	}
	stmt := mustFind(t, rec, `FROM "products"`)
	for _, want := range []string{
		"store_id = '" + sqlStoreID.String() + "'",
		"slug = 'audifonos'",
		"active = true",
		"LIMIT 1",
	} {
		if !strings.Contains(stmt, want) {
			t.Errorf("product query missing %q: %s", want, stmt)
		}
	}
}

func TestFindProductBySlugNotFound(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	rec.fail["products"] = gorm.ErrRecordNotFound

	_, err := repo.FindProductBySlug(context.Background(), sqlStoreID, "missing")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestFindProductBySlugBackendError(t *testing.T) {
	repo, rec := dryRunRepository(t, 0)
	rec.fail["products"] = errors.New("connection reset by peer")

	_, err := repo.FindProductBySlug(context.Background(), sqlStoreID, "audifonos")

	var repoErr *catalog_filter.RepositoryError
	if !errors.As(err, &repoErr) || repoErr.Op != "fetch product" {
		t.Fatalf("expected fetch product RepositoryError, got %v", err)
	}
	if errors.Is(err, ErrProductNotFound) {
		t.Fatal("backend error reported as not found")
	}
}
