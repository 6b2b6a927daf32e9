package services

import (
	"sync"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/shopspring/decimal"
)

// PriceStore holds the current market snapshot and price table.
// Both are replaced wholesale and never mutated after publication, so a reader
// may keep using what it got while a refresh swaps in newer data.
type PriceStore struct {
	mu       sync.RWMutex
	snapshot *domain.MarketSnapshot
	table    domain.PriceTable
	fallback engine.FallbackRates
}

// NewPriceStore creates an empty store.
func NewPriceStore(fallback engine.FallbackRates) *PriceStore {
	return &PriceStore{fallback: fallback}
}

// Snapshot returns the current market snapshot, or nil before the first fetch.
func (s *PriceStore) Snapshot() *domain.MarketSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Table returns the current price table. Callers must not modify it.
func (s *PriceStore) Table() domain.PriceTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// SetSnapshot replaces the market snapshot. A nil snapshot is ignored so the last good one stays.
func (s *PriceStore) SetSnapshot(snapshot *domain.MarketSnapshot) {
	if snapshot == nil {
		return
	}
	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// SetTable replaces the price table with a copy of table.
func (s *PriceStore) SetTable(table domain.PriceTable) {
	cp := make(domain.PriceTable, len(table))
	for k, v := range table {
		cp[k] = v
	}
	s.mu.Lock()
	s.table = cp
	s.mu.Unlock()
}

// PutTableEntry publishes a new table that differs from the current one by a single entry.
func (s *PriceStore) PutTableEntry(key string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(domain.PriceTable, len(s.table)+1)
	for k, v := range s.table {
		cp[k] = v
	}
	cp[key] = price
	s.table = cp
}

// Resolver returns a resolver over a consistent view of the current data.
func (s *PriceStore) Resolver() engine.PriceResolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return engine.NewPriceResolver(s.snapshot, s.table, s.fallback)
}
