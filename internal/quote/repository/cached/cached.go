// Package cached wraps a quote Repository with an in-process LRU for by-id
// reads. Quotes are immutable once created, so the only invalidation needed
// is on delete.
package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"quote-service/internal/quote"
	"quote-service/internal/quote/repository"
)

const DefaultSize = 512

type implRepository struct {
	next  repository.Repository
	cache *lru.Cache[int64, quote.Quote]
}

// New wraps next with an LRU of the given size. A size below 1 falls back to
// DefaultSize.
func New(next repository.Repository, size int) (repository.Repository, error) {
	if size < 1 {
		size = DefaultSize
	}
	cache, err := lru.New[int64, quote.Quote](size)
	if err != nil {
		return nil, err
	}
	return &implRepository{next: next, cache: cache}, nil
}

// CreateQuote writes through and primes the cache with the stored quote.
func (r *implRepository) CreateQuote(ctx context.Context, opt repository.CreateQuoteOptions) (quote.Quote, error) {
	q, err := r.next.CreateQuote(ctx, opt)
	if err != nil {
		return quote.Quote{}, err
	}
	r.cache.Add(q.ID, q)
	return q, nil
}

// GetQuote serves by-id reads from the cache when possible. Misses (both
// cache misses and storage misses) fall through; storage misses are not
// cached so a later create of the same id is never shadowed.
func (r *implRepository) GetQuote(ctx context.Context, id int64) (quote.Quote, error) {
	if q, ok := r.cache.Get(id); ok {
		return q, nil
	}
	q, err := r.next.GetQuote(ctx, id)
	if err != nil {
		return quote.Quote{}, err
	}
	if q.ID != 0 {
		r.cache.Add(q.ID, q)
	}
	return q, nil
}

// GetOneQuote passes through: the text index lookup already hits storage.
func (r *implRepository) GetOneQuote(ctx context.Context, opt repository.GetOneQuoteOptions) (quote.Quote, error) {
	return r.next.GetOneQuote(ctx, opt)
}

// ListQuotes passes through; pages are cut by the caller from the snapshot.
func (r *implRepository) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	return r.next.ListQuotes(ctx)
}

// DeleteQuote invalidates the entry before delegating, so a concurrent read
// cannot re-serve the deleted quote from cache.
func (r *implRepository) DeleteQuote(ctx context.Context, id int64) (int64, error) {
	r.cache.Remove(id)
	return r.next.DeleteQuote(ctx, id)
}
