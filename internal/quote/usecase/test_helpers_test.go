package usecase_test

import (
	"context"

	"quote-service/internal/quote"
	"quote-service/internal/quote/repository"
)

// fakeRepo is a func-field stub for the quote repository. Unset fields
// return zero values.
type fakeRepo struct {
	createFunc func(opt repository.CreateQuoteOptions) (quote.Quote, error)
	getFunc    func(id int64) (quote.Quote, error)
	getOneFunc func(opt repository.GetOneQuoteOptions) (quote.Quote, error)
	listFunc   func() ([]quote.Quote, error)
	deleteFunc func(id int64) (int64, error)
}

func (f *fakeRepo) CreateQuote(ctx context.Context, opt repository.CreateQuoteOptions) (quote.Quote, error) {
	if f.createFunc == nil {
		return quote.Quote{}, nil
	}
	return f.createFunc(opt)
}

func (f *fakeRepo) GetQuote(ctx context.Context, id int64) (quote.Quote, error) {
	if f.getFunc == nil {
		return quote.Quote{}, nil
	}
	return f.getFunc(id)
}

func (f *fakeRepo) GetOneQuote(ctx context.Context, opt repository.GetOneQuoteOptions) (quote.Quote, error) {
	if f.getOneFunc == nil {
		return quote.Quote{}, nil
	}
	return f.getOneFunc(opt)
}

func (f *fakeRepo) ListQuotes(ctx context.Context) ([]quote.Quote, error) {
	if f.listFunc == nil {
		return []quote.Quote{}, nil
	}
	return f.listFunc()
}

func (f *fakeRepo) DeleteQuote(ctx context.Context, id int64) (int64, error) {
	if f.deleteFunc == nil {
		return 0, nil
	}
	return f.deleteFunc(id)
}
