package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"quote-service/internal/quote"
	repo "quote-service/internal/quote/repository"
)

// CreateQuote assigns the next id from the sequence, then writes the record,
// the index entry and the text index in one transaction.
func (r *implRepository) CreateQuote(ctx context.Context, opt repo.CreateQuoteOptions) (quote.Quote, error) {
	id, err := r.rdb.Incr(ctx, seqKey).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s incr: %v", r.dsn("CreateQuote"), err)
		return quote.Quote{}, repo.ErrFailedToInsert
	}

	q := quote.Quote{
		ID:        id,
		Author:    opt.Author,
		Content:   opt.Content,
		CreatedAt: time.Now().UTC(),
	}
	data, err := encodeQuote(q)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateQuote"), err)
		return quote.Quote{}, repo.ErrFailedToInsert
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, recordKey(id), data, 0)
	pipe.ZAdd(ctx, indexKey, goredis.Z{Score: float64(id), Member: strconv.FormatInt(id, 10)})
	pipe.HSet(ctx, byTextKey, textField(opt.Author, opt.Content), id)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s exec: %v", r.dsn("CreateQuote"), err)
		return quote.Quote{}, repo.ErrFailedToInsert
	}
	return q, nil
}

// GetQuote retrieves a single Quote by id.
// Returns zero-value Quote (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetQuote(ctx context.Context, id int64) (quote.Quote, error) {
	data, err := r.rdb.Get(ctx, recordKey(id)).Bytes()
	if err == goredis.Nil {
		return quote.Quote{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetQuote"), err)
		return quote.Quote{}, repo.ErrFailedToGet
	}

	q, err := decodeQuote(data)
	if err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetQuote"), err)
		return quote.Quote{}, repo.ErrFailedToGet
	}
	return q, nil
}

// GetOneQuote retrieves a single Quote by the provided filters via the text
// index. Same zero-value convention as GetQuote.
func (r *implRepository) GetOneQuote(ctx context.Context, opt repo.GetOneQuoteOptions) (quote.Quote, error) {
	raw, err := r.rdb.HGet(ctx, byTextKey, textField(opt.Author, opt.Content)).Result()
	if err == goredis.Nil {
		return quote.Quote{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneQuote"), err)
		return quote.Quote{}, repo.ErrFailedToGet
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.l.Errorf(ctx, "%s parse id %q: %v", r.dsn("GetOneQuote"), raw, err)
		return quote.Quote{}, repo.ErrFailedToGet
	}
	return r.GetQuote(ctx, id)
}

// ListQuotes returns an id-ordered snapshot of all stored quotes.
func (r *implRepository) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	ids, err := r.rdb.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s zrange: %v", r.dsn("ListQuotes"), err)
		return nil, repo.ErrFailedToList
	}
	if len(ids) == 0 {
		return []quote.Quote{}, nil
	}

	keys := make([]string, len(ids))
	for i, raw := range ids {
		keys[i] = recordKeyPrefix + raw
	}
	values, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s mget: %v", r.dsn("ListQuotes"), err)
		return nil, repo.ErrFailedToList
	}

	quotes := make([]quote.Quote, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry whose record was removed between the two reads.
			continue
		}
		q, err := decodeQuote([]byte(raw))
		if err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListQuotes"), err)
			return nil, repo.ErrFailedToList
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// DeleteQuote removes a Quote by id and returns the number of records
// removed (0 when the id was absent).
func (r *implRepository) DeleteQuote(ctx context.Context, id int64) (int64, error) {
	q, err := r.GetQuote(ctx, id)
	if err != nil {
		return 0, repo.ErrFailedToDelete
	}
	if q.ID == 0 {
		return 0, nil
	}

	pipe := r.rdb.TxPipeline()
	delCmd := pipe.Del(ctx, recordKey(id))
	pipe.ZRem(ctx, indexKey, strconv.FormatInt(id, 10))
	pipe.HDel(ctx, byTextKey, textField(q.Author, q.Content))
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s exec: %v", r.dsn("DeleteQuote"), err)
		return 0, repo.ErrFailedToDelete
	}
	return delCmd.Val(), nil
}
