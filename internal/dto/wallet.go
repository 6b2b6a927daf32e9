package dto

import (
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the structure for opening a wallet.
type CreateWalletRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currency"`
}

// ClosurePlanRequest names the wallet a closure would settle into.
type ClosurePlanRequest struct {
	DestinationWalletID string `json:"destinationWalletID" binding:"required"`
}

// CloseWalletRequest names the destination wallet. It may be empty when the wallet has no balance.
type CloseWalletRequest struct {
	DestinationWalletID string `json:"destinationWalletID"`
}

// WalletResponse defines the structure for API responses containing wallet details.
type WalletResponse struct {
	WalletID      string              `json:"walletID"`
	CurrencyCode  domain.CurrencyCode `json:"currencyCode"`
	Kind          domain.CurrencyKind `json:"kind"`
	Balance       decimal.Decimal     `json:"balance" swaggertype:"string"`
	BalanceText   string              `json:"balanceText"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:      w.WalletID,
		CurrencyCode:  w.CurrencyCode,
		Kind:          domain.KindOf(w.CurrencyCode),
		Balance:       w.Balance,
		BalanceText:   w.Balance.StringFixed(int32(domain.PrecisionOf(w.CurrencyCode))),
		CreatedAt:     w.CreatedAt,
		LastUpdatedAt: w.LastUpdatedAt,
	}
}

// ToListWalletResponse converts a slice of domain.Wallet to a slice of WalletResponse DTOs.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i := range wallets {
		responses[i] = ToWalletResponse(&wallets[i])
	}
	return responses
}

// ClosurePlanResponse describes the order a closure would submit.
// Intent is nil when the wallet is empty and can be deleted without settlement.
type ClosurePlanResponse struct {
	WalletID            string              `json:"walletID"`
	DestinationWalletID string              `json:"destinationWalletID"`
	Intent              *domain.OrderIntent `json:"intent,omitempty"`
	SettlementRequired  bool                `json:"settlementRequired"`
	Compatible          bool                `json:"compatible"`
}

// ToClosurePlanResponse converts a planned intent to ClosurePlanResponse DTO
func ToClosurePlanResponse(walletID, destinationWalletID string, intent *domain.OrderIntent) ClosurePlanResponse {
	return ClosurePlanResponse{
		WalletID:            walletID,
		DestinationWalletID: destinationWalletID,
		Intent:              intent,
		SettlementRequired:  intent != nil,
		Compatible:          intent == nil || !intent.IsIncompatible(),
	}
}

// CurrencyResponse describes one entry of the currency catalog.
type CurrencyResponse struct {
	CurrencyCode domain.CurrencyCode `json:"currencyCode"`
	Symbol       string              `json:"symbol"`
	Name         string              `json:"name"`
	Kind         domain.CurrencyKind `json:"kind"`
	Precision    int                 `json:"precision"`
}

// ToListCurrencyResponse converts the currency catalog to CurrencyResponse DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = CurrencyResponse{
			CurrencyCode: c.CurrencyCode,
			Symbol:       c.Symbol,
			Name:         c.Name,
			Kind:         c.Kind,
			Precision:    c.Precision,
		}
	}
	return responses
}

// CloseWalletResponse reports the outcome of a wallet closure.
type CloseWalletResponse struct {
	WalletID          string              `json:"walletID"`
	Deleted           bool                `json:"deleted"`
	Intent            *domain.OrderIntent `json:"intent,omitempty"`
	SettlementMessage string              `json:"settlementMessage,omitempty"`
}

// ToCloseWalletResponse converts a domain.ClosureResult to CloseWalletResponse DTO
func ToCloseWalletResponse(r *domain.ClosureResult) CloseWalletResponse {
	resp := CloseWalletResponse{
		WalletID: r.WalletID,
		Deleted:  r.Deleted,
		Intent:   r.Intent,
	}
	if r.Settlement != nil {
		resp.SettlementMessage = r.Settlement.Message
	}
	return resp
}
