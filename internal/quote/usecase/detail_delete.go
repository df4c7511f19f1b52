package usecase

import (
	"context"

	"quote-service/internal/quote"
	"quote-service/pkg/outcome"
)

// Detail returns a single quote by id.
func (uc *implUseCase) Detail(ctx context.Context, id int64) outcome.Value[quote.DetailQuoteOutput] {
	q, err := uc.repo.GetQuote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetQuote: %v", err)
		return outcome.FailureOf[quote.DetailQuoteOutput](quote.ErrStorageRead)
	}
	if q.ID == 0 {
		return outcome.FailureOf[quote.DetailQuoteOutput](quote.ErrNotFound)
	}

	return outcome.SuccessOf(quote.DetailQuoteOutput{Quote: q})
}

// Delete removes a quote by id. A zero affected count from the store means
// the quote never existed.
func (uc *implUseCase) Delete(ctx context.Context, id int64) outcome.Outcome {
	affected, err := uc.repo.DeleteQuote(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteQuote: %v", err)
		return outcome.Failure(quote.ErrStorageWrite)
	}
	if affected == 0 {
		return outcome.Failure(quote.ErrNotFound)
	}

	return outcome.Success()
}
