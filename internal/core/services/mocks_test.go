package services_test

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockWalletRepository is a mock type for the WalletRepositoryFacade interface
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletByUserAndCurrency(ctx context.Context, userID string, code domain.CurrencyCode) (*domain.Wallet, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	args := m.Called(ctx, walletID)
	return args.Error(0)
}

func (m *MockWalletRepository) DeleteEmptyWallet(ctx context.Context, walletID string) error {
	args := m.Called(ctx, walletID)
	return args.Error(0)
}

// MockPriceTableRepository is a mock type for the PriceTableRepositoryFacade interface
type MockPriceTableRepository struct {
	mock.Mock
}

func (m *MockPriceTableRepository) LoadPriceTable(ctx context.Context) (domain.PriceTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceTable), args.Error(1)
}

func (m *MockPriceTableRepository) SavePriceEntry(ctx context.Context, key string, price decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, key, price, updatedBy)
	return args.Error(0)
}

// MockSettlementClient is a mock type for the SettlementClient interface
type MockSettlementClient struct {
	mock.Mock
}

func (m *MockSettlementClient) Buy(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, payment domain.CurrencyCode) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, crypto, amount, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockSettlementClient) Sell(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, target domain.CurrencyCode) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, crypto, amount, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockSettlementClient) Transfer(ctx context.Context, fromUserID, toUserID string, crypto domain.CurrencyCode, amount decimal.Decimal) (*domain.SettlementResult, error) {
	args := m.Called(ctx, fromUserID, toUserID, crypto, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockSettlementClient) Order(ctx context.Context, userID string, order domain.LimitOrder) (*domain.SettlementResult, error) {
	args := m.Called(ctx, userID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementResult), args.Error(1)
}

func (m *MockSettlementClient) History(ctx context.Context, userID string) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

// MockEventPublisher is a mock type for the EventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockMarketFeed is a mock type for the MarketFeed interface
type MockMarketFeed struct {
	mock.Mock
}

func (m *MockMarketFeed) FetchSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketSnapshot), args.Error(1)
}

// MockSnapshotCache is a mock type for the SnapshotCache interface
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) SaveMarketSnapshot(ctx context.Context, snapshot *domain.MarketSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotCache) LoadMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketSnapshot), args.Error(1)
}

func (m *MockSnapshotCache) SavePriceTable(ctx context.Context, table domain.PriceTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockSnapshotCache) LoadPriceTable(ctx context.Context) (domain.PriceTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.PriceTable), args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func btcSnapshot(eur string) *domain.MarketSnapshot {
	return &domain.MarketSnapshot{
		Quotes: map[domain.CurrencyCode]domain.MarketQuote{
			domain.BTC: {Prices: map[domain.CurrencyCode]decimal.Decimal{domain.EUR: dec(eur)}},
		},
	}
}
