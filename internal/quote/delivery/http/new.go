package http

import (
	"github.com/gin-gonic/gin"

	"quote-service/internal/pipeline"
	"quote-service/internal/quote"
	"quote-service/internal/quote/validation"
	"quote-service/pkg/log"
)

// Handler is the public interface for the quote HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
}

// handler holds the pipeline-wrapped usecase operations. Wrapping happens
// once here, at startup: this is the explicit registry mapping each operation
// to its rule sets.
type handler struct {
	l log.Logger

	create pipeline.Handler[quote.CreateQuoteInput, quote.CreateQuoteOutput]
	list   pipeline.Handler[quote.ListQuotesInput, quote.ListQuotesOutput]
	detail pipeline.Handler[int64, quote.DetailQuoteOutput]
	remove pipeline.MarkerHandler[int64]
}

// New creates a new HTTP handler for the quote domain with validation
// registered in front of every operation.
func New(l log.Logger, uc quote.UseCase) *handler {
	return &handler{
		l:      l,
		create: pipeline.Validate(uc.Create, validation.CreateQuoteRules{}),
		list:   pipeline.Validate(uc.List, validation.ListQuotesRules{}),
		detail: pipeline.Validate(uc.Detail, validation.QuoteIDRules{}),
		remove: pipeline.ValidateMarker(uc.Delete, validation.QuoteIDRules{}),
	}
}
