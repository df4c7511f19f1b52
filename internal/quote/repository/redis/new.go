// Package redis implements the quote repository on Redis: records are
// msgpack-encoded under per-id keys, a zset keeps the id-ordered index and a
// hash indexes author+content pairs for duplicate lookups. Multi-key writes
// go through TxPipeline so a create or delete lands atomically.
package redis

import (
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"quote-service/internal/quote/repository"
	"quote-service/pkg/log"
)

const (
	seqKey    = "quote:next_id"
	indexKey  = "quotes:index"
	byTextKey = "quotes:by_text"

	recordKeyPrefix = "quote:"
)

type implRepository struct {
	rdb *goredis.Client
	l   log.Logger
}

// New creates a new Redis-backed Repository for the quote domain.
func New(rdb *goredis.Client, l log.Logger) repository.Repository {
	if rdb == nil {
		panic("quote/repository/redis: rdb is required")
	}
	return &implRepository{rdb: rdb, l: l}
}

func recordKey(id int64) string {
	return recordKeyPrefix + strconv.FormatInt(id, 10)
}

// textField joins author and content into one hash field. The author is
// length-prefixed so the boundary between the two is unambiguous no matter
// what bytes either field contains.
func textField(author, content string) string {
	return strconv.Itoa(len(author)) + ":" + author + content
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("quote/repository/redis.%s", method)
}
