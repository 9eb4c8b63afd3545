// Package ceid resolves canonical employer identifiers. A CEID is a stable
// pseudo-identifier for an employer, scoped by normalized employer name and
// pinned to the address first seen for that name.
package ceid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"verigate/internal/employer/engine"
	"verigate/internal/employer/metrics"
	"verigate/pkg/platform/sentinel"
)

// Entry is one cached name→identifier mapping.
type Entry struct {
	CEID    string `json:"ceid"`
	Address string `json:"address"`
}

// Store is the key-value cache behind the resolver. Implementations return
// sentinel.ErrNotFound for unknown keys.
type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	Put(ctx context.Context, key string, entry Entry) error
}

// CacheKey derives the cache key for an employer name.
func CacheKey(employerName string) string {
	return "ceid-" + engine.NormalizeEmployerName(employerName)
}

// Resolver implements engine.CEIDResolver over an injected Store.
type Resolver struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewResolver(store Store, logger *slog.Logger, metrics *metrics.Metrics) *Resolver {
	return &Resolver{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve returns the cached identifier when the normalized name is known
// and the stored address matches exactly. Any other state — unknown name,
// address drift, unreadable cache entry — mints a fresh identifier and
// overwrites the entry. The previous mapping for a drifted address is gone
// after the overwrite; no history is kept.
//
// Resolve never fails: cache errors degrade to a miss, and a failed write
// only costs identifier stability on the next call.
func (r *Resolver) Resolve(ctx context.Context, employerName, employerAddress string) string {
	key := CacheKey(employerName)

	entry, err := r.store.Get(ctx, key)
	switch {
	case err == nil && entry.Address == employerAddress:
		r.metrics.RecordCEIDCacheHit()
		return entry.CEID
	case err != nil && !errors.Is(err, sentinel.ErrNotFound):
		if r.logger != nil {
			r.logger.WarnContext(ctx, "ceid cache read failed, treating as miss",
				"key", key,
				"error", err,
			)
		}
	}

	r.metrics.RecordCEIDCacheMiss()

	minted := uuid.NewString()
	if err := r.store.Put(ctx, key, Entry{CEID: minted, Address: employerAddress}); err != nil {
		if r.logger != nil {
			r.logger.WarnContext(ctx, "ceid cache write failed",
				"key", key,
				"error", err,
			)
		}
	}
	return minted
}
