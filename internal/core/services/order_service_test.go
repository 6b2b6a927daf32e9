package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/core/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	settlement *MockSettlementClient
	publisher  *MockEventPublisher
	service    portssvc.OrderSvcFacade
	ctx        context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.settlement = new(MockSettlementClient)
	suite.publisher = new(MockEventPublisher)
	suite.service = services.NewOrderService(suite.settlement, services.WithOrderEventPublisher(suite.publisher))
	suite.ctx = context.Background()
}

func (suite *OrderServiceTestSuite) TestBuy_Success() {
	suite.settlement.On("Buy", suite.ctx, "u1", domain.BTC, decimalEq("0.25"), domain.EUR).
		Return(&domain.SettlementResult{Message: "ok"}, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderSubmitted && e.Intent != nil && e.Intent.Kind == domain.IntentBuy
	})).Return(nil).Once()

	res, err := suite.service.Buy(suite.ctx, "u1", dto.BuyOrderRequest{CryptoUnit: "btc", Amount: dec("0.25"), PaymentUnit: "EUR"})

	suite.Require().NoError(err)
	suite.Equal("ok", res.Message)
	suite.settlement.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestBuy_Validation() {
	cases := []struct {
		name string
		req  dto.BuyOrderRequest
	}{
		{"fiat crypto unit", dto.BuyOrderRequest{CryptoUnit: "EUR", Amount: dec("1"), PaymentUnit: "USD"}},
		{"crypto payment", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("1"), PaymentUnit: "ETH"}},
		{"zero amount", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("0"), PaymentUnit: "EUR"}},
		{"negative amount", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("-1"), PaymentUnit: "EUR"}},
		{"too precise", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("0.000000001"), PaymentUnit: "EUR"}},
		{"unknown unit", dto.BuyOrderRequest{CryptoUnit: "DOGE", Amount: dec("1"), PaymentUnit: "EUR"}},
		{"huge exponent", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("1e2000000000"), PaymentUnit: "EUR"}},
		{"tiny exponent", dto.BuyOrderRequest{CryptoUnit: "BTC", Amount: dec("1e-2000000000"), PaymentUnit: "EUR"}},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Buy(suite.ctx, "u1", tc.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.settlement.AssertNotCalled(suite.T(), "Buy", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestSell_SettlementFailure() {
	suite.settlement.On("Sell", suite.ctx, "u1", domain.ETH, mock.Anything, domain.USD).
		Return(nil, apperrors.ErrSettlementFailed).Once()

	res, err := suite.service.Sell(suite.ctx, "u1", dto.SellOrderRequest{CryptoUnit: "ETH", Amount: dec("1.5"), TargetUnit: "USD"})

	suite.ErrorIs(err, apperrors.ErrSettlementFailed)
	suite.Nil(res)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestTransfer_ToSelfIsInvalid() {
	_, err := suite.service.Transfer(suite.ctx, "u1", dto.TransferOrderRequest{ToUserID: "u1", CryptoUnit: "SOL", Amount: dec("3")})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OrderServiceTestSuite) TestTransfer_Success() {
	suite.settlement.On("Transfer", suite.ctx, "u1", "u2", domain.SOL, decimalEq("3")).
		Return(&domain.SettlementResult{Message: "sent"}, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	res, err := suite.service.Transfer(suite.ctx, "u1", dto.TransferOrderRequest{ToUserID: "u2", CryptoUnit: "SOL", Amount: dec("3")})

	suite.Require().NoError(err)
	suite.Equal("sent", res.Message)
}

func (suite *OrderServiceTestSuite) TestLimit_Success() {
	suite.settlement.On("Order", suite.ctx, "u1", mock.MatchedBy(func(o domain.LimitOrder) bool {
		return o.Side == domain.IntentSell && o.Crypto == domain.ETH &&
			o.Amount.Equal(dec("2")) && o.TargetPrice.Equal(dec("3000"))
	})).Return(&domain.SettlementResult{Message: "scheduled"}, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderSubmitted && e.Intent != nil && e.Intent.Price != nil && e.Intent.Price.Equal(dec("3000"))
	})).Return(nil).Once()

	res, err := suite.service.Limit(suite.ctx, "u1", dto.LimitOrderRequest{OrderType: "sell", CryptoUnit: "eth", Amount: dec("2"), TargetPrice: dec("3000")})

	suite.Require().NoError(err)
	suite.Equal("scheduled", res.Message)
	suite.settlement.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestLimit_Validation() {
	cases := []struct {
		name string
		req  dto.LimitOrderRequest
	}{
		{"unknown type", dto.LimitOrderRequest{OrderType: "HOLD", CryptoUnit: "BTC", Amount: dec("1"), TargetPrice: dec("1")}},
		{"fiat unit", dto.LimitOrderRequest{OrderType: "BUY", CryptoUnit: "EUR", Amount: dec("1"), TargetPrice: dec("1")}},
		{"zero target", dto.LimitOrderRequest{OrderType: "BUY", CryptoUnit: "BTC", Amount: dec("1"), TargetPrice: dec("0")}},
		{"huge target", dto.LimitOrderRequest{OrderType: "BUY", CryptoUnit: "BTC", Amount: dec("1"), TargetPrice: dec("1e2000000000")}},
		{"huge amount", dto.LimitOrderRequest{OrderType: "BUY", CryptoUnit: "BTC", Amount: dec("1e2000000000"), TargetPrice: dec("1")}},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := suite.service.Limit(suite.ctx, "u1", tc.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.settlement.AssertNotCalled(suite.T(), "Order", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestListHistory_PaginatesNewestFirst() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.TransactionRecord{
		{ID: 1, Timestamp: base},
		{ID: 2, Timestamp: base.Add(time.Minute)},
		{ID: 3, Timestamp: base.Add(2 * time.Minute)},
		{ID: 4, Timestamp: base.Add(2 * time.Minute)},
		{ID: 5, Timestamp: base.Add(3 * time.Minute)},
	}
	suite.settlement.On("History", suite.ctx, "u1").Return(records, nil)

	first, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListOrderHistoryParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(first.Transactions, 2)
	suite.Equal(int64(5), first.Transactions[0].ID)
	suite.Equal(int64(4), first.Transactions[1].ID)
	suite.Require().NotNil(first.NextToken)

	second, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListOrderHistoryParams{Limit: 2, NextToken: first.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(second.Transactions, 2)
	suite.Equal(int64(3), second.Transactions[0].ID)
	suite.Equal(int64(2), second.Transactions[1].ID)
	suite.Require().NotNil(second.NextToken)

	third, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListOrderHistoryParams{Limit: 2, NextToken: second.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(third.Transactions, 1)
	suite.Equal(int64(1), third.Transactions[0].ID)
	suite.Nil(third.NextToken)
}

func (suite *OrderServiceTestSuite) TestListHistory_BadTokenIsValidationError() {
	suite.settlement.On("History", suite.ctx, "u1").Return([]domain.TransactionRecord{}, nil)
	bad := "not-a-token!"

	_, err := suite.service.ListHistory(suite.ctx, "u1", dto.ListOrderHistoryParams{NextToken: &bad})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
