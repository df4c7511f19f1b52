package quote

import "quote-service/pkg/outcome"

var (
	ErrNotFound     = outcome.NewError("Quote.NotFound", "quote not found", outcome.KindNotFound)
	ErrDuplicate    = outcome.NewError("Quote.Duplicate", "an identical quote already exists", outcome.KindConflict)
	ErrStorageRead  = outcome.NewError("Quote.StorageRead", "failed to read from quote storage", outcome.KindFailure)
	ErrStorageWrite = outcome.NewError("Quote.StorageWrite", "failed to write to quote storage", outcome.KindFailure)
)
