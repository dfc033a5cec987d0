package catalog_filter

import (
	"sort"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used for name ordering when the store has none.
var DefaultLocale = language.Spanish

// SortProducts orders list in place. The sort is stable, so ties keep the
// fetch order. A missing price counts as +inf ascending and -inf descending.
func SortProducts(list []models.Product, key SortKey, locale language.Tag) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return priceLess(list[i].BasePrice, list[j].BasePrice)
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return priceGreater(list[i].BasePrice, list[j].BasePrice)
		})
	case SortNameAsc, SortNameDesc:
		if locale == language.Und {
			locale = DefaultLocale
		}
		col := collate.New(locale)
		desc := key == SortNameDesc
		sort.SliceStable(list, func(i, j int) bool {
			cmp := col.CompareString(list[i].Name, list[j].Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
}

// null is +infinity
func priceLess(a, b decimal.NullDecimal) bool {
	switch {
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	default:
		return a.Decimal.LessThan(b.Decimal)
	}
}

// null is -infinity, so it also lands after every priced product
func priceGreater(a, b decimal.NullDecimal) bool {
	switch {
	case !a.Valid:
		return false
	case !b.Valid:
		return true
	default:
		return a.Decimal.GreaterThan(b.Decimal)
	}
}
