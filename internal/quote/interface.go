package quote

import (
	"context"

	"quote-service/pkg/outcome"
)

// UseCase is the quote business logic. Every operation returns an outcome:
// expected failures (not found, duplicates, storage faults) travel as data,
// never as Go errors.
type UseCase interface {
	Create(ctx context.Context, input CreateQuoteInput) outcome.Value[CreateQuoteOutput]
	List(ctx context.Context, input ListQuotesInput) outcome.Value[ListQuotesOutput]
	Detail(ctx context.Context, id int64) outcome.Value[DetailQuoteOutput]
	Delete(ctx context.Context, id int64) outcome.Outcome
}
