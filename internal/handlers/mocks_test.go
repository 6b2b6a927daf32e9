package handlers_test

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, bool, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Wallet), args.Bool(1), args.Error(2)
}

func (m *MockWalletService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	args := m.Called(ctx, userID, walletID)
	return args.Error(0)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock ClosureService ---
type MockClosureService struct {
	mock.Mock
}

func (m *MockClosureService) PlanClosure(ctx context.Context, userID, walletID, destinationWalletID string) (*domain.OrderIntent, error) {
	args := m.Called(ctx, userID, walletID, destinationWalletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderIntent), args.Error(1)
}

func (m *MockClosureService) CloseWallet(ctx context.Context, userID, walletID string, req dto.CloseWalletRequest) (*domain.ClosureResult, error) {
	args := m.Called(ctx, userID, walletID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosureResult), args.Error(1)
}

var _ portssvc.ClosureSvc = (*MockClosureService)(nil)

// --- Mock PriceService ---
type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) GetPrice(ctx context.Context, base, quote string) (*domain.Price, error) {
	args := m.Called(ctx, base, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}

func (m *MockPriceService) GetMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketSnapshot), args.Error(1)
}

func (m *MockPriceService) UpsertPriceEntry(ctx context.Context, req dto.UpsertPriceEntryRequest, userID string) error {
	args := m.Called(ctx, req, userID)
	return args.Error(0)
}

var _ portssvc.PriceSvcFacade = (*MockPriceService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) ApplyEdit(ctx context.Context, req dto.ConversionPreviewRequest) (*domain.AmountState, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AmountState), args.Error(1)
}

var _ portssvc.ConversionSvc = (*MockConversionService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Buy(ctx context.Context, userID string, req dto.BuyOrderRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockOrderService) Sell(ctx context.Context, userID string, req dto.SellOrderRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockOrderService) Transfer(ctx context.Context, userID string, req dto.TransferOrderRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockOrderService) Limit(ctx context.Context, userID string, req dto.LimitOrderRequest) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockOrderService) ListHistory(ctx context.Context, userID string, params dto.ListOrderHistoryParams) (*dto.ListOrderHistoryResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListOrderHistoryResponse), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)
