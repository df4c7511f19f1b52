package quote

import (
	"time"

	"quote-service/pkg/paging"
)

// --- Quote Domain Model ---

// Quote is the core domain entity managed by this module.
type Quote struct {
	ID        int64
	Author    string
	Content   string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateQuoteInput struct {
	Author  string
	Content string
}

type ListQuotesInput struct {
	Page paging.Params
}

// --- UseCase Outputs ---

type CreateQuoteOutput struct {
	Quote Quote
}

type ListQuotesOutput struct {
	Page paging.Result[Quote]
}

type DetailQuoteOutput struct {
	Quote Quote
}
