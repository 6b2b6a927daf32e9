package dto

import (
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertPriceEntryRequest defines the structure for storing a price table entry.
// Key is either a currency code (price in the reference unit) or "<BASE>_<QUOTE>".
type UpsertPriceEntryRequest struct {
	Key   string          `json:"key" binding:"required,pricekey"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
}

// PriceResponse defines the structure for API responses containing a resolved price.
type PriceResponse struct {
	Base   domain.CurrencyCode `json:"base"`
	Quote  domain.CurrencyCode `json:"quote"`
	Price  decimal.Decimal     `json:"price" swaggertype:"string"`
	Source domain.PriceSource  `json:"source"`
}

// ToPriceResponse converts a resolved domain.Price to PriceResponse DTO
func ToPriceResponse(base, quote domain.CurrencyCode, p *domain.Price) PriceResponse {
	return PriceResponse{Base: base, Quote: quote, Price: p.Value, Source: p.Source}
}

// MarketAssetResponse is one crypto asset of the market overview.
type MarketAssetResponse struct {
	CurrencyCode domain.CurrencyCode                     `json:"currencyCode"`
	Name         string                                  `json:"name"`
	Prices       map[domain.CurrencyCode]decimal.Decimal `json:"prices" swaggertype:"object,string"`
	Change24h    map[domain.CurrencyCode]decimal.Decimal `json:"change24h,omitempty" swaggertype:"object,string"`
}

// MarketOverviewResponse defines the structure of the market overview.
type MarketOverviewResponse struct {
	Assets     []MarketAssetResponse `json:"assets"`
	FetchedAt  time.Time             `json:"fetchedAt"`
	AgeSeconds int64                 `json:"ageSeconds"`
}

// ToMarketOverviewResponse converts a snapshot into the overview DTO, ordered like the currency catalog.
func ToMarketOverviewResponse(s *domain.MarketSnapshot, now time.Time) MarketOverviewResponse {
	resp := MarketOverviewResponse{
		Assets:     []MarketAssetResponse{},
		FetchedAt:  s.FetchedAt,
		AgeSeconds: int64(s.Age(now).Seconds()),
	}
	for _, c := range domain.SupportedCurrencies() {
		q, ok := s.Quotes[c.CurrencyCode]
		if !ok {
			continue
		}
		resp.Assets = append(resp.Assets, MarketAssetResponse{
			CurrencyCode: c.CurrencyCode,
			Name:         c.Name,
			Prices:       q.Prices,
			Change24h:    q.Change24h,
		})
	}
	return resp
}
