package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	"github.com/SscSPs/crypto_wallet_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher gateways.EventPublisher
	Now       func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// AuthorizeWallet checks that the wallet belongs to the user.
func (s *BaseService) AuthorizeWallet(ctx context.Context, userID string, wallet *domain.Wallet) error {
	if wallet.UserID != userID {
		s.GetLogger(ctx).Warn("Wallet access denied",
			slog.String("wallet_id", wallet.WalletID),
			slog.String("user_id", userID))
		return fmt.Errorf("%w: wallet %s does not belong to the user", apperrors.ErrForbidden, wallet.WalletID)
	}
	return nil
}

// PublishEvent fills in id and time and publishes the event. Failures are logged and never returned.
func (s *BaseService) PublishEvent(ctx context.Context, event domain.Event) {
	if s.Publisher == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.String("event_id", event.EventID))
	}
}

// requireCurrency normalizes a code and checks it against the catalog.
func requireCurrency(raw string) (domain.CurrencyCode, error) {
	code := domain.NormalizeCurrencyCode(raw)
	if _, ok := domain.LookupCurrency(code); !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q", raw))
	}
	return code, nil
}

// requireAmount checks that an order amount is positive and representable at the currency's precision.
func requireAmount(amount decimal.Decimal, code domain.CurrencyCode) error {
	if !domain.AmountInBounds(amount) {
		return apperrors.NewValidationError("amount is out of range")
	}
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	if !amount.Equal(amount.Truncate(int32(domain.PrecisionOf(code)))) {
		return apperrors.NewValidationError(fmt.Sprintf("amount has more than %d fractional digits", domain.PrecisionOf(code)))
	}
	return nil
}
