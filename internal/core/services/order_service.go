package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/SscSPs/crypto_wallet_app/internal/utils/pagination"
)

const defaultHistoryLimit = 20

type orderService struct {
	BaseService
	settlement gateways.SettlementClient
}

// OrderOption is a functional option for configuring the order service
type OrderOption func(*orderService)

// WithOrderEventPublisher publishes an order.submitted event for every accepted order.
func WithOrderEventPublisher(publisher gateways.EventPublisher) OrderOption {
	return func(s *orderService) {
		s.Publisher = publisher
	}
}

// NewOrderService creates a new order service.
func NewOrderService(settlement gateways.SettlementClient, options ...OrderOption) portssvc.OrderSvcFacade {
	svc := &orderService{settlement: settlement}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) Buy(ctx context.Context, userID string, req dto.BuyOrderRequest) (*domain.SettlementResult, error) {
	crypto, err := requireCrypto(req.CryptoUnit)
	if err != nil {
		return nil, err
	}
	payment, err := requireFiat(req.PaymentUnit)
	if err != nil {
		return nil, err
	}
	if err := requireAmount(req.Amount, crypto); err != nil {
		return nil, err
	}

	res, err := s.settlement.Buy(ctx, userID, crypto, req.Amount, payment)
	if err != nil {
		s.LogError(ctx, err, "Buy order failed", slog.String("crypto", string(crypto)))
		return nil, err
	}
	intent := domain.OrderIntent{Kind: domain.IntentBuy, Base: crypto, Quote: payment, Amount: req.Amount}
	s.published(ctx, userID, intent, res)
	return res, nil
}

func (s *orderService) Sell(ctx context.Context, userID string, req dto.SellOrderRequest) (*domain.SettlementResult, error) {
	crypto, err := requireCrypto(req.CryptoUnit)
	if err != nil {
		return nil, err
	}
	target, err := requireFiat(req.TargetUnit)
	if err != nil {
		return nil, err
	}
	if err := requireAmount(req.Amount, crypto); err != nil {
		return nil, err
	}

	res, err := s.settlement.Sell(ctx, userID, crypto, req.Amount, target)
	if err != nil {
		s.LogError(ctx, err, "Sell order failed", slog.String("crypto", string(crypto)))
		return nil, err
	}
	s.published(ctx, userID, domain.Sell(crypto, req.Amount, target), res)
	return res, nil
}

func (s *orderService) Transfer(ctx context.Context, userID string, req dto.TransferOrderRequest) (*domain.SettlementResult, error) {
	crypto, err := requireCrypto(req.CryptoUnit)
	if err != nil {
		return nil, err
	}
	toUserID := strings.TrimSpace(req.ToUserID)
	if toUserID == "" {
		return nil, apperrors.NewValidationError("toUserID is required")
	}
	if toUserID == userID {
		return nil, apperrors.NewValidationError("cannot transfer to yourself")
	}
	if err := requireAmount(req.Amount, crypto); err != nil {
		return nil, err
	}

	res, err := s.settlement.Transfer(ctx, userID, toUserID, crypto, req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Transfer failed",
			slog.String("crypto", string(crypto)),
			slog.String("to_user_id", toUserID))
		return nil, err
	}
	s.PublishEvent(ctx, domain.Event{
		Type:     domain.EventOrderSubmitted,
		UserID:   userID,
		Currency: crypto,
		Amount:   req.Amount,
		Message:  res.Message,
	})
	return res, nil
}

func (s *orderService) Limit(ctx context.Context, userID string, req dto.LimitOrderRequest) (*domain.SettlementResult, error) {
	side := domain.IntentKind(strings.ToUpper(strings.TrimSpace(req.OrderType)))
	if side != domain.IntentBuy && side != domain.IntentSell {
		return nil, apperrors.NewValidationError(fmt.Sprintf("orderType must be BUY or SELL, got %q", req.OrderType))
	}
	crypto, err := requireCrypto(req.CryptoUnit)
	if err != nil {
		return nil, err
	}
	if err := requireAmount(req.Amount, crypto); err != nil {
		return nil, err
	}
	if !domain.AmountInBounds(req.TargetPrice) || !req.TargetPrice.IsPositive() {
		return nil, apperrors.NewValidationError("targetPrice must be a positive price")
	}

	order := domain.LimitOrder{Side: side, Crypto: crypto, Amount: req.Amount, TargetPrice: req.TargetPrice}
	res, err := s.settlement.Order(ctx, userID, order)
	if err != nil {
		s.LogError(ctx, err, "Limit order failed",
			slog.String("crypto", string(crypto)),
			slog.String("side", string(side)))
		return nil, err
	}
	target := req.TargetPrice
	s.published(ctx, userID, domain.OrderIntent{Kind: side, Base: crypto, Amount: req.Amount, Price: &target}, res)
	return res, nil
}

func (s *orderService) ListHistory(ctx context.Context, userID string, params dto.ListOrderHistoryParams) (*dto.ListOrderHistoryResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.settlement.History(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch settlement history", slog.String("user_id", userID))
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Timestamp.After(records[j].Timestamp)
		}
		return records[i].ID > records[j].ID
	})

	start := 0
	if params.NextToken != nil && *params.NextToken != "" {
		ts, id, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start = len(records)
		for i, r := range records {
			// First record strictly after the cursor in newest-first order.
			if r.Timestamp.Before(ts) || (r.Timestamp.Equal(ts) && r.ID < id) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	page := make([]domain.TransactionRecord, end-start)
	copy(page, records[start:end])

	resp := &dto.ListOrderHistoryResponse{Transactions: page}
	if end < len(records) && len(page) > 0 {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.Timestamp, last.ID)
		resp.NextToken = &token
	}
	return resp, nil
}

func (s *orderService) published(ctx context.Context, userID string, intent domain.OrderIntent, res *domain.SettlementResult) {
	s.PublishEvent(ctx, domain.Event{
		Type:     domain.EventOrderSubmitted,
		UserID:   userID,
		Intent:   &intent,
		Currency: intent.Base,
		Amount:   intent.Amount,
		Message:  res.Message,
	})
}

func requireCrypto(raw string) (domain.CurrencyCode, error) {
	code, err := requireCurrency(raw)
	if err != nil {
		return "", err
	}
	if !domain.IsCrypto(code) {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is not a cryptocurrency", code))
	}
	return code, nil
}

func requireFiat(raw string) (domain.CurrencyCode, error) {
	code, err := requireCurrency(raw)
	if err != nil {
		return "", err
	}
	if !domain.IsFiat(code) {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is not a fiat currency", code))
	}
	return code, nil
}
