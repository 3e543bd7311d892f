package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	cachebackend "txquery/internal/cache/backend"
	"txquery/internal/db"
	"txquery/internal/query"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrStoreUnavailable = errors.New("store unavailable")
)

func (r *TransactionRepository) findMany(ctx context.Context, op string, filter query.Filter, page query.Pagination) (Envelope, error) {
	if err := page.Validate(); err != nil {
		return Envelope{}, fmt.Errorf("%s: %w: pagination: %w", op, ErrInvalidArgument, err)
	}

	defer r.observe(op, time.Now())

	rows := []Transaction{}
	count, err := r.store.GetPage(ctx, filter, page.WithDefaults(), chainOrder, &rows)
	if err != nil {
		return Envelope{}, fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}

	return Envelope{Count: count, Rows: rows}, nil
}

// findOne returns nil without an error when no row matches.
func (r *TransactionRepository) findOne(ctx context.Context, op string, filter query.Filter) (*Transaction, error) {
	defer r.observe(op, time.Now())

	var tx Transaction
	err := r.store.GetOne(ctx, filter, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}

	return &tx, nil
}

// cachedOne serves key from the cache and fills it from the store on a miss.
// Cache failures are treated as misses.
func (r *TransactionRepository) cachedOne(ctx context.Context, op, key string, filter query.Filter) (*Transaction, error) {
	if r.cache != nil {
		v, err := r.cache.Get(key)
		switch {
		case err == nil:
			if tx, ok := v.(Transaction); ok {
				return tx.clone(), nil
			}
			r.logs.Debugw("unexpected cache entry", "key", key, "type", fmt.Sprintf("%T", v))
		case !errors.Is(err, cachebackend.ErrCacheMiss):
			r.logs.Debugw("cache lookup failed", "key", key, "error", err)
		}
	}

	tx, err := r.findOne(ctx, op, filter)
	if err != nil || tx == nil {
		return tx, err
	}

	if r.cache != nil {
		if err := r.cache.Set(key, *tx.clone()); err != nil {
			r.logs.Debugw("failed to cache transaction", "key", key, "error", err)
		}
	}

	return tx, nil
}

func (r *TransactionRepository) observe(op string, start time.Time) {
	if r.queryDuration == nil {
		return
	}
	r.queryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
