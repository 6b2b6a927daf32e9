// Package marketfeed reads crypto prices from a CoinGecko compatible "simple/price" endpoint.
package marketfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

const change24hSuffix = "_24h_change"

// Client fetches market snapshots over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

var _ gateways.MarketFeed = (*Client)(nil)

// NewClient creates a feed client. baseURL is the API root, e.g. "https://api.coingecko.com/api/v3".
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// simplePriceResponse is keyed by market id, then by lower-case fiat code or "<fiat>_24h_change".
type simplePriceResponse map[string]map[string]decimal.Decimal

// FetchSnapshot requests every supported crypto asset in every supported fiat currency.
func (c *Client) FetchSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	var ids, fiats []string
	for _, cur := range domain.SupportedCurrencies() {
		switch cur.Kind {
		case domain.KindCrypto:
			ids = append(ids, cur.MarketID)
		case domain.KindFiat:
			fiats = append(fiats, strings.ToLower(string(cur.CurrencyCode)))
		}
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", strings.Join(fiats, ","))
	q.Set("include_24hr_change", "true")
	endpoint := c.baseURL + "/simple/price?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create market feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call market feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("market feed returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode market feed response: %w", err)
	}

	snapshot := toSnapshot(payload, c.now())
	if len(snapshot.Quotes) == 0 {
		return nil, fmt.Errorf("market feed returned no usable prices")
	}

	c.logger.Debug("Market snapshot fetched", slog.Int("assets", len(snapshot.Quotes)))
	return snapshot, nil
}

func toSnapshot(payload simplePriceResponse, fetchedAt time.Time) *domain.MarketSnapshot {
	snapshot := &domain.MarketSnapshot{
		Quotes:    make(map[domain.CurrencyCode]domain.MarketQuote),
		FetchedAt: fetchedAt,
	}
	for marketID, values := range payload {
		code, ok := domain.CryptoByMarketID(marketID)
		if !ok {
			continue
		}
		quote := domain.MarketQuote{
			Prices:    make(map[domain.CurrencyCode]decimal.Decimal),
			Change24h: make(map[domain.CurrencyCode]decimal.Decimal),
		}
		for key, v := range values {
			if fiat, isChange := strings.CutSuffix(key, change24hSuffix); isChange {
				quote.Change24h[domain.NormalizeCurrencyCode(fiat)] = v
				continue
			}
			fiat := domain.NormalizeCurrencyCode(key)
			if domain.IsFiat(fiat) && v.IsPositive() {
				quote.Prices[fiat] = v
			}
		}
		if len(quote.Prices) > 0 {
			snapshot.Quotes[code] = quote
		}
	}
	return snapshot
}
