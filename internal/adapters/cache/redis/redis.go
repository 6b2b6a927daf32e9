// Package redis mirrors the last good price data into Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	"github.com/redis/go-redis/v9"
)

const (
	marketSnapshotKey = "prices:market_snapshot"
	priceTableKey     = "prices:price_table"
)

// NewClient parses a redis:// URL and checks the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// kvClient is the subset of redis.Cmdable the cache uses.
type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SnapshotCache stores price data as JSON values with a TTL.
type SnapshotCache struct {
	client kvClient
	ttl    time.Duration
}

var _ gateways.SnapshotCache = (*SnapshotCache)(nil)

// NewSnapshotCache creates a cache whose entries expire after ttl. A zero ttl keeps them forever.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

// SaveMarketSnapshot stores the snapshot.
func (a *SnapshotCache) SaveMarketSnapshot(ctx context.Context, snapshot *domain.MarketSnapshot) error {
	return a.set(ctx, marketSnapshotKey, snapshot)
}

// LoadMarketSnapshot returns the stored snapshot, or nil when there is none.
func (a *SnapshotCache) LoadMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	var snapshot domain.MarketSnapshot
	found, err := a.get(ctx, marketSnapshotKey, &snapshot)
	if err != nil || !found {
		return nil, err
	}
	return &snapshot, nil
}

// SavePriceTable stores the table.
func (a *SnapshotCache) SavePriceTable(ctx context.Context, table domain.PriceTable) error {
	return a.set(ctx, priceTableKey, table)
}

// LoadPriceTable returns the stored table, or nil when there is none.
func (a *SnapshotCache) LoadPriceTable(ctx context.Context) (domain.PriceTable, error) {
	var table domain.PriceTable
	found, err := a.get(ctx, priceTableKey, &table)
	if err != nil || !found {
		return nil, err
	}
	return table, nil
}

func (a *SnapshotCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.client.Set(ctx, key, data, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (a *SnapshotCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := a.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
