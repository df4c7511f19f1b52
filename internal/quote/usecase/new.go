package usecase

import (
	"quote-service/internal/quote/repository"
	"quote-service/pkg/log"
)

// implUseCase is the private implementation of quote.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new quote UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
