package redis

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quote-service/internal/quote"
)

// record is the stored shape of a quote. Kept separate from the domain
// entity so the wire layout can evolve without touching quote.Quote.
type record struct {
	ID        int64     `msgpack:"id"`
	Author    string    `msgpack:"author"`
	Content   string    `msgpack:"content"`
	CreatedAt time.Time `msgpack:"created_at"`
}

func encodeQuote(q quote.Quote) ([]byte, error) {
	return msgpack.Marshal(record{
		ID:        q.ID,
		Author:    q.Author,
		Content:   q.Content,
		CreatedAt: q.CreatedAt,
	})
}

func decodeQuote(b []byte) (quote.Quote, error) {
	var rec record
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return quote.Quote{}, err
	}
	return quote.Quote{
		ID:        rec.ID,
		Author:    rec.Author,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
	}, nil
}
