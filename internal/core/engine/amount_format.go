package engine

import (
	"strings"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount parses user input into a non-negative amount. It accepts surrounding
// whitespace and a comma as decimal separator. Exponent notation and amounts outside
// domain.AmountInBounds are rejected.
func ParseAmount(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() || !domain.AmountInBounds(v) {
		return decimal.Zero, false
	}
	return v, true
}

// FormatAmount renders v with the display precision of code, rounding half up.
func FormatAmount(v decimal.Decimal, code domain.CurrencyCode) string {
	return v.StringFixed(int32(domain.PrecisionOf(code)))
}
