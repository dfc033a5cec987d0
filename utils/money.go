package utils

import (
	"github.com/shopspring/decimal"
)

// NoPriceLabel is shown when a product has no base price.
const NoPriceLabel = "Precio a consultar"

// CurrencySymbol maps an ISO currency code to the symbol shown on cards.
func CurrencySymbol(code string) string {
	switch code {
	case "", "BOB":
		return "Bs"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	default:
		return code
	}
}

// PriceLabel formats a nullable price as "Bs 12.50".
func PriceLabel(price decimal.NullDecimal, currency string) string {
	if !price.Valid {
		return NoPriceLabel
	}
	return CurrencySymbol(currency) + " " + price.Decimal.StringFixed(2)
}

// PricePtr returns nil for a missing price so it serialises as null.
func PricePtr(price decimal.NullDecimal) *decimal.Decimal {
	if !price.Valid {
		return nil
	}
	d := price.Decimal.Round(2)
	return &d
}
