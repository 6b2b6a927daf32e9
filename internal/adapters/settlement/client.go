// Package settlement talks to the transactions service that executes buy, sell and transfer orders.
package settlement

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

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// Client submits orders over HTTP. Orders are acknowledged with a plain text message.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.SettlementClient = (*Client)(nil)

// NewClient creates a settlement client for the service rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Buy buys amount of crypto paid from the user's payment currency wallet.
func (c *Client) Buy(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, payment domain.CurrencyCode) (*domain.SettlementResult, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("cryptoUnit", string(crypto))
	q.Set("amount", amount.String())
	q.Set("paymentUnit", string(payment))
	return c.submit(ctx, domain.SettlementBuy, "/transactions/buy", q)
}

// Sell sells amount of crypto into the user's target currency wallet.
func (c *Client) Sell(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, target domain.CurrencyCode) (*domain.SettlementResult, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("cryptoUnit", string(crypto))
	q.Set("amount", amount.String())
	q.Set("targetUnit", string(target))
	return c.submit(ctx, domain.SettlementSell, "/transactions/sell", q)
}

// Transfer moves amount of crypto between two users.
func (c *Client) Transfer(ctx context.Context, fromUserID, toUserID string, crypto domain.CurrencyCode, amount decimal.Decimal) (*domain.SettlementResult, error) {
	q := url.Values{}
	q.Set("fromUserId", fromUserID)
	q.Set("toUserId", toUserID)
	q.Set("cryptoUnit", string(crypto))
	q.Set("amount", amount.String())
	return c.submit(ctx, domain.SettlementTransfer, "/transactions/transfer", q)
}

// Order schedules a limit order that executes when the market reaches the target price.
func (c *Client) Order(ctx context.Context, userID string, order domain.LimitOrder) (*domain.SettlementResult, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("orderType", string(order.Side))
	q.Set("cryptoUnit", string(order.Crypto))
	q.Set("amount", order.Amount.String())
	q.Set("targetPrice", order.TargetPrice.String())
	return c.submit(ctx, domain.SettlementLimit, "/transactions/order", q)
}

func (c *Client) submit(ctx context.Context, kind domain.SettlementKind, path string, q url.Values) (*domain.SettlementResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("settlement_kind", string(kind)))

	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: settlement service not configured", apperrors.ErrSettlementFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrSettlementFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Settlement request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSettlementFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := strings.TrimSpace(string(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Settlement service rejected order",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response", message))
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrSettlementFailed, resp.StatusCode, message)
	}

	logger.Info("Settlement order accepted", slog.String("response", message))
	return &domain.SettlementResult{Message: message}, nil
}

// transactionWire mirrors the history payload. Timestamps carry no zone and are read as UTC.
type transactionWire struct {
	ID        int64           `json:"id"`
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Actor1    int64           `json:"actor1"`
	Actor2    *int64          `json:"actor2"`
	Amount    decimal.Decimal `json:"amount"`
	Unit      string          `json:"unit"`
	Status    string          `json:"status"`
	Message   string          `json:"message"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// History returns every settlement record of the user, in the order the service returns them.
func (c *Client) History(ctx context.Context, userID string) ([]domain.TransactionRecord, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: settlement service not configured", apperrors.ErrSettlementFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions/history/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrSettlementFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSettlementFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: history status %d: %s", apperrors.ErrSettlementFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var wire []transactionWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode history: %v", apperrors.ErrSettlementFailed, err)
	}

	records := make([]domain.TransactionRecord, 0, len(wire))
	for _, w := range wire {
		ts, err := parseTimestamp(w.Timestamp)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Skipping history record", slog.Int64("id", w.ID), slog.String("error", err.Error()))
			continue
		}
		records = append(records, domain.TransactionRecord{
			ID:        w.ID,
			Timestamp: ts,
			Type:      w.Type,
			Actor1:    w.Actor1,
			Actor2:    w.Actor2,
			Amount:    w.Amount,
			Unit:      domain.NormalizeCurrencyCode(w.Unit),
			Status:    w.Status,
			Message:   w.Message,
		})
	}
	return records, nil
}
