package domain

import "strings"

// CurrencyCode identifies a unit of value (e.g. "BTC", "EUR").
type CurrencyCode string

// CurrencyKind classifies a currency as crypto or fiat.
type CurrencyKind string

const (
	KindCrypto  CurrencyKind = "CRYPTO"
	KindFiat    CurrencyKind = "FIAT"
	KindUnknown CurrencyKind = "UNKNOWN"
)

const (
	BTC CurrencyCode = "BTC"
	ETH CurrencyCode = "ETH"
	SOL CurrencyCode = "SOL"
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
)

// Display precision used for amounts, in fractional digits.
const (
	CryptoPrecision = 8
	FiatPrecision   = 2
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"` // e.g., "BTC"
	Symbol       string       `json:"symbol"`       // e.g., "₿"
	Name         string       `json:"name"`         // e.g., "Bitcoin"
	Kind         CurrencyKind `json:"kind"`
	Precision    int          `json:"precision"`          // Fractional digits shown to users
	MarketID     string       `json:"marketID,omitempty"` // Identifier used by the market data feed, crypto only
}

// supportedCurrencies is the static catalog. Kind is decided by membership here, never by stored data.
var supportedCurrencies = map[CurrencyCode]Currency{
	BTC: {CurrencyCode: BTC, Symbol: "₿", Name: "Bitcoin", Kind: KindCrypto, Precision: CryptoPrecision, MarketID: "bitcoin"},
	ETH: {CurrencyCode: ETH, Symbol: "Ξ", Name: "Ethereum", Kind: KindCrypto, Precision: CryptoPrecision, MarketID: "ethereum"},
	SOL: {CurrencyCode: SOL, Symbol: "◎", Name: "Solana", Kind: KindCrypto, Precision: CryptoPrecision, MarketID: "solana"},
	EUR: {CurrencyCode: EUR, Symbol: "€", Name: "Euro", Kind: KindFiat, Precision: FiatPrecision},
	USD: {CurrencyCode: USD, Symbol: "$", Name: "US Dollar", Kind: KindFiat, Precision: FiatPrecision},
}

// NormalizeCurrencyCode trims and upper-cases a raw currency code.
func NormalizeCurrencyCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// KindOf returns the kind of the given code, or KindUnknown if it is not in the catalog.
func KindOf(code CurrencyCode) CurrencyKind {
	c, ok := supportedCurrencies[code]
	if !ok {
		return KindUnknown
	}
	return c.Kind
}

// IsCrypto reports whether code belongs to the crypto set.
func IsCrypto(code CurrencyCode) bool { return KindOf(code) == KindCrypto }

// IsFiat reports whether code belongs to the fiat set.
func IsFiat(code CurrencyCode) bool { return KindOf(code) == KindFiat }

// LookupCurrency returns the catalog entry for code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	c, ok := supportedCurrencies[code]
	return c, ok
}

// PrecisionOf returns the display precision for code. Unknown codes use the crypto precision
// so that no significant digits are dropped.
func PrecisionOf(code CurrencyCode) int {
	if c, ok := supportedCurrencies[code]; ok {
		return c.Precision
	}
	return CryptoPrecision
}

// SupportedCurrencies returns the catalog ordered crypto first, then fiat.
func SupportedCurrencies() []Currency {
	order := []CurrencyCode{BTC, ETH, SOL, EUR, USD}
	res := make([]Currency, 0, len(order))
	for _, code := range order {
		res = append(res, supportedCurrencies[code])
	}
	return res
}

// CryptoByMarketID maps a market feed identifier (e.g. "bitcoin") back to its code.
func CryptoByMarketID(marketID string) (CurrencyCode, bool) {
	for code, c := range supportedCurrencies {
		if c.Kind == KindCrypto && c.MarketID == marketID {
			return code, true
		}
	}
	return "", false
}
