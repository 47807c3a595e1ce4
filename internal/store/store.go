// Package store defines the key/value string storage the checklist is
// persisted to, and opens the configured backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/store/redisstore"
)

// Store is a durable map of string keys to string values.
// Get reports ok=false for a key that was never set.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

var ErrUnknownBackend = errors.New("unknown store backend")

var (
	_ Store = (*jsonstore.Store)(nil)
	_ Store = (*memstore.Store)(nil)
	_ Store = (*redisstore.Store)(nil)
)

// Open returns the backend named by cfg.Store.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreFile, "":
		return jsonstore.New(cfg.File, log)
	case config.StoreRedis:
		return redisstore.New(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case config.StoreMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store)
}
