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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWalletRepository
	service  portssvc.WalletSvcFacade
	ctx      context.Context
	userID   string
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWalletRepository)
	suite.service = services.NewWalletService(suite.mockRepo)
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *WalletServiceTestSuite) TestCreateWallet_Success() {
	suite.mockRepo.On("FindWalletByUserAndCurrency", suite.ctx, suite.userID, domain.ETH).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveWallet", suite.ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.UserID == suite.userID && w.CurrencyCode == domain.ETH && w.Balance.IsZero()
	})).Return(nil).Once()

	wallet, created, err := suite.service.CreateWallet(suite.ctx, suite.userID, dto.CreateWalletRequest{CurrencyCode: " eth "})

	suite.Require().NoError(err)
	suite.True(created)
	suite.Require().NotNil(wallet)
	suite.NotEmpty(wallet.WalletID)
	suite.Equal(domain.ETH, wallet.CurrencyCode)
	suite.Equal(suite.userID, wallet.CreatedBy)
	suite.WithinDuration(time.Now(), wallet.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreateWallet_ReturnsExisting() {
	existing := &domain.Wallet{WalletID: "w-1", UserID: suite.userID, CurrencyCode: domain.BTC, Balance: dec("0.3")}
	suite.mockRepo.On("FindWalletByUserAndCurrency", suite.ctx, suite.userID, domain.BTC).Return(existing, nil).Once()

	wallet, created, err := suite.service.CreateWallet(suite.ctx, suite.userID, dto.CreateWalletRequest{CurrencyCode: "BTC"})

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(existing, wallet)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestCreateWallet_DuplicateRaceReturnsWinner() {
	winner := &domain.Wallet{WalletID: "w-2", UserID: suite.userID, CurrencyCode: domain.EUR}
	suite.mockRepo.On("FindWalletByUserAndCurrency", suite.ctx, suite.userID, domain.EUR).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveWallet", suite.ctx, mock.AnythingOfType("domain.Wallet")).Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindWalletByUserAndCurrency", suite.ctx, suite.userID, domain.EUR).Return(winner, nil).Once()

	wallet, created, err := suite.service.CreateWallet(suite.ctx, suite.userID, dto.CreateWalletRequest{CurrencyCode: "EUR"})

	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(winner, wallet)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestCreateWallet_UnsupportedCurrency() {
	wallet, created, err := suite.service.CreateWallet(suite.ctx, suite.userID, dto.CreateWalletRequest{CurrencyCode: "DOGE"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.False(created)
	suite.Nil(wallet)
}

func (suite *WalletServiceTestSuite) TestCreateWallet_SaveError() {
	suite.mockRepo.On("FindWalletByUserAndCurrency", suite.ctx, suite.userID, domain.SOL).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveWallet", suite.ctx, mock.AnythingOfType("domain.Wallet")).Return(assert.AnError).Once()

	wallet, _, err := suite.service.CreateWallet(suite.ctx, suite.userID, dto.CreateWalletRequest{CurrencyCode: "SOL"})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(wallet)
}

func (suite *WalletServiceTestSuite) TestGetWallet_OtherUserIsForbidden() {
	suite.mockRepo.On("FindWalletByID", suite.ctx, "w-1").
		Return(&domain.Wallet{WalletID: "w-1", UserID: "someone-else", CurrencyCode: domain.BTC}, nil).Once()

	wallet, err := suite.service.GetWallet(suite.ctx, suite.userID, "w-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(wallet)
}

func (suite *WalletServiceTestSuite) TestGetWallet_NotFound() {
	suite.mockRepo.On("FindWalletByID", suite.ctx, "missing").Return(nil, apperrors.NewNotFoundError("wallet missing not found")).Once()

	_, err := suite.service.GetWallet(suite.ctx, suite.userID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletServiceTestSuite) TestListWallets_EmptyIsNotNil() {
	suite.mockRepo.On("FindWalletsByUser", suite.ctx, suite.userID).Return(nil, nil).Once()

	wallets, err := suite.service.ListWallets(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(wallets)
	suite.Empty(wallets)
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_NonEmptyIsConflict() {
	suite.mockRepo.On("FindWalletByID", suite.ctx, "w-1").
		Return(&domain.Wallet{WalletID: "w-1", UserID: suite.userID, CurrencyCode: domain.BTC, Balance: dec("0.1")}, nil).Once()

	err := suite.service.DeleteWallet(suite.ctx, suite.userID, "w-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteEmptyWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_Empty() {
	suite.mockRepo.On("FindWalletByID", suite.ctx, "w-1").
		Return(&domain.Wallet{WalletID: "w-1", UserID: suite.userID, CurrencyCode: domain.EUR, Balance: dec("0")}, nil).Once()
	suite.mockRepo.On("DeleteEmptyWallet", suite.ctx, "w-1").Return(nil).Once()

	err := suite.service.DeleteWallet(suite.ctx, suite.userID, "w-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_CreditedAfterReadIsConflict() {
	suite.mockRepo.On("FindWalletByID", suite.ctx, "w-1").
		Return(&domain.Wallet{WalletID: "w-1", UserID: suite.userID, CurrencyCode: domain.EUR, Balance: dec("0")}, nil).Once()
	suite.mockRepo.On("DeleteEmptyWallet", suite.ctx, "w-1").
		Return(apperrors.NewConflictError("wallet w-1 holds a balance and must be closed instead")).Once()

	err := suite.service.DeleteWallet(suite.ctx, suite.userID, "w-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
