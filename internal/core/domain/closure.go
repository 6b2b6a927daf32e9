package domain

// ClosureResult reports what happened when a wallet was closed.
type ClosureResult struct {
	WalletID   string            `json:"walletID"`
	Intent     *OrderIntent      `json:"intent,omitempty"` // nil when the wallet was empty
	Settlement *SettlementResult `json:"settlement,omitempty"`
	Deleted    bool              `json:"deleted"`
}
