package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// PriceFeedPoller keeps a PriceStore fresh. The market feed and the internal price table
// are polled on their own intervals; a failed poll keeps the previous data.
type PriceFeedPoller struct {
	store          *PriceStore
	feed           gateways.MarketFeed
	tableRepo      portsrepo.PriceTableReader
	cache          gateways.SnapshotCache
	marketInterval time.Duration
	tableInterval  time.Duration
	logger         *slog.Logger
}

// PollerOption configures optional poller dependencies.
type PollerOption func(*PriceFeedPoller)

// WithSnapshotCache mirrors every successful refresh into cache and enables Warm.
func WithSnapshotCache(cache gateways.SnapshotCache) PollerOption {
	return func(p *PriceFeedPoller) {
		p.cache = cache
	}
}

// NewPriceFeedPoller creates a poller. feed or tableRepo may be nil to disable that source.
func NewPriceFeedPoller(
	store *PriceStore,
	feed gateways.MarketFeed,
	tableRepo portsrepo.PriceTableReader,
	marketInterval, tableInterval time.Duration,
	logger *slog.Logger,
	options ...PollerOption,
) *PriceFeedPoller {
	p := &PriceFeedPoller{
		store:          store,
		feed:           feed,
		tableRepo:      tableRepo,
		marketInterval: marketInterval,
		tableInterval:  tableInterval,
		logger:         logger,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Warm seeds the store from the cache so a restart serves the last good prices immediately.
func (p *PriceFeedPoller) Warm(ctx context.Context) {
	if p.cache == nil {
		return
	}
	if snap, err := p.cache.LoadMarketSnapshot(ctx); err != nil {
		p.logger.Warn("Failed to load cached market snapshot", slog.String("error", err.Error()))
	} else if snap != nil {
		p.store.SetSnapshot(snap)
		p.logger.Info("Market snapshot warmed from cache", slog.Time("fetched_at", snap.FetchedAt))
	}
	if table, err := p.cache.LoadPriceTable(ctx); err != nil {
		p.logger.Warn("Failed to load cached price table", slog.String("error", err.Error()))
	} else if table != nil {
		p.store.SetTable(table)
		p.logger.Info("Price table warmed from cache", slog.Int("entries", len(table)))
	}
}

// RefreshMarket fetches one market snapshot.
func (p *PriceFeedPoller) RefreshMarket(ctx context.Context) error {
	snap, err := p.feed.FetchSnapshot(ctx)
	if err != nil {
		return err
	}
	p.store.SetSnapshot(snap)
	if p.cache != nil {
		if err := p.cache.SaveMarketSnapshot(ctx, snap); err != nil {
			p.logger.Warn("Failed to mirror market snapshot", slog.String("error", err.Error()))
		}
	}
	return nil
}

// RefreshTable reloads the internal price table.
func (p *PriceFeedPoller) RefreshTable(ctx context.Context) error {
	table, err := p.tableRepo.LoadPriceTable(ctx)
	if err != nil {
		return err
	}
	p.store.SetTable(table)
	if p.cache != nil {
		if err := p.cache.SavePriceTable(ctx, table); err != nil {
			p.logger.Warn("Failed to mirror price table", slog.String("error", err.Error()))
		}
	}
	return nil
}

// Run polls until ctx is cancelled. It returns nil on cancellation.
func (p *PriceFeedPoller) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.feed != nil {
		g.Go(func() error {
			return p.loop(gctx, "market", p.marketInterval, p.RefreshMarket)
		})
	}
	if p.tableRepo != nil {
		g.Go(func() error {
			return p.loop(gctx, "price_table", p.tableInterval, p.RefreshTable)
		})
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (p *PriceFeedPoller) loop(ctx context.Context, source string, interval time.Duration, refresh func(context.Context) error) error {
	logger := p.logger.With(slog.String("source", source))
	logger.Info("Price poller started", slog.Duration("interval", interval))

	poll := func() {
		if err := refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("Price refresh failed, keeping last good data", slog.String("error", err.Error()))
		}
	}

	poll()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Price poller stopped")
			return ctx.Err()
		case <-ticker.C:
			poll()
		}
	}
}
