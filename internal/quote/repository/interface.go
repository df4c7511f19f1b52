package repository

import (
	"context"

	"quote-service/internal/quote"
)

// Repository is the composed interface for the quote domain data store.
type Repository interface {
	QuoteRepository
}

// QuoteRepository defines all data access methods for the Quote entity.
// Implementations assign ids (positive, monotonically increasing) and commit
// each write atomically.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, opt CreateQuoteOptions) (quote.Quote, error)
	GetQuote(ctx context.Context, id int64) (quote.Quote, error)
	GetOneQuote(ctx context.Context, opt GetOneQuoteOptions) (quote.Quote, error)
	ListQuotes(ctx context.Context) ([]quote.Quote, error)
	DeleteQuote(ctx context.Context, id int64) (int64, error)
}
