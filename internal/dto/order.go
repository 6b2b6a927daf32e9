package dto

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuyOrderRequest buys Amount of CryptoUnit paid from the PaymentUnit wallet.
type BuyOrderRequest struct {
	CryptoUnit  string          `json:"cryptoUnit" binding:"required,currency"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentUnit string          `json:"paymentUnit" binding:"required,currency"`
}

// SellOrderRequest sells Amount of CryptoUnit into the TargetUnit wallet.
type SellOrderRequest struct {
	CryptoUnit string          `json:"cryptoUnit" binding:"required,currency"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string"`
	TargetUnit string          `json:"targetUnit" binding:"required,currency"`
}

// TransferOrderRequest moves Amount of CryptoUnit to another user.
type TransferOrderRequest struct {
	ToUserID   string          `json:"toUserID" binding:"required"`
	CryptoUnit string          `json:"cryptoUnit" binding:"required,currency"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string"`
}

// LimitOrderRequest schedules a buy or sell of Amount of CryptoUnit at TargetPrice.
type LimitOrderRequest struct {
	OrderType   string          `json:"orderType" binding:"required,oneof=BUY SELL"`
	CryptoUnit  string          `json:"cryptoUnit" binding:"required,currency"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	TargetPrice decimal.Decimal `json:"targetPrice" swaggertype:"string"`
}

// SettlementResponse wraps the settlement acknowledgement.
type SettlementResponse struct {
	Message string `json:"message"`
}

// ListOrderHistoryParams defines the query parameters for listing settlement history.
type ListOrderHistoryParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListOrderHistoryResponse is one page of settlement history.
type ListOrderHistoryResponse struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
	NextToken    *string                    `json:"nextToken,omitempty"`
}
