package usecase

import (
	"context"

	"quote-service/internal/quote"
	repo "quote-service/internal/quote/repository"
	"quote-service/pkg/outcome"
)

// Create stores a new Quote after checking that the same author/content pair
// does not already exist.
func (uc *implUseCase) Create(ctx context.Context, input quote.CreateQuoteInput) outcome.Value[quote.CreateQuoteOutput] {
	existing, err := uc.repo.GetOneQuote(ctx, repo.GetOneQuoteOptions{
		Author:  input.Author,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneQuote: %v", err)
		return outcome.FailureOf[quote.CreateQuoteOutput](quote.ErrStorageRead)
	}
	if existing.ID != 0 {
		return outcome.FailureOf[quote.CreateQuoteOutput](quote.ErrDuplicate)
	}

	q, err := uc.repo.CreateQuote(ctx, repo.CreateQuoteOptions{
		Author:  input.Author,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateQuote: %v", err)
		return outcome.FailureOf[quote.CreateQuoteOutput](quote.ErrStorageWrite)
	}

	return outcome.SuccessOf(quote.CreateQuoteOutput{Quote: q})
}
