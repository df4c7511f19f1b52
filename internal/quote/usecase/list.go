package usecase

import (
	"context"

	"quote-service/internal/quote"
	"quote-service/pkg/outcome"
	"quote-service/pkg/paging"
)

// List returns one page of quotes, cut from an id-ordered snapshot of the
// store. Counting and slicing both run over the same snapshot.
func (uc *implUseCase) List(ctx context.Context, input quote.ListQuotesInput) outcome.Value[quote.ListQuotesOutput] {
	snapshot, err := uc.repo.ListQuotes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListQuotes: %v", err)
		return outcome.FailureOf[quote.ListQuotesOutput](quote.ErrStorageRead)
	}

	return outcome.SuccessOf(quote.ListQuotesOutput{
		Page: paging.Paginate(snapshot, input.Page),
	})
}
