// Package validation declares the rule sets run by the pipeline stage in
// front of each quote operation. The delivery layer registers them with the
// matching handler at startup.
package validation

import (
	"fmt"
	"unicode/utf8"

	"quote-service/internal/pipeline"
	"quote-service/internal/quote"
)

const (
	AuthorMinLen  = 5
	AuthorMaxLen  = 100
	ContentMinLen = 5
	ContentMaxLen = 500
	MaxPageSize   = 100
)

// CreateQuoteRules validates the create operation's author and content.
type CreateQuoteRules struct{}

// Check implements pipeline.RuleSet.
func (CreateQuoteRules) Check(cmd quote.CreateQuoteInput) []pipeline.Violation {
	var vs []pipeline.Violation
	if n := utf8.RuneCountInString(cmd.Author); n < AuthorMinLen {
		vs = append(vs, pipeline.Violation{
			Field:   "author",
			Message: fmt.Sprintf("author must be at least %d characters long", AuthorMinLen),
		})
	} else if n > AuthorMaxLen {
		vs = append(vs, pipeline.Violation{
			Field:   "author",
			Message: fmt.Sprintf("author must be at most %d characters long", AuthorMaxLen),
		})
	}
	if n := utf8.RuneCountInString(cmd.Content); n < ContentMinLen {
		vs = append(vs, pipeline.Violation{
			Field:   "content",
			Message: fmt.Sprintf("content must be at least %d characters long", ContentMinLen),
		})
	} else if n > ContentMaxLen {
		vs = append(vs, pipeline.Violation{
			Field:   "content",
			Message: fmt.Sprintf("content must be at most %d characters long", ContentMaxLen),
		})
	}
	return vs
}

// ListQuotesRules validates the list operation's page parameters.
type ListQuotesRules struct{}

// Check implements pipeline.RuleSet.
func (ListQuotesRules) Check(cmd quote.ListQuotesInput) []pipeline.Violation {
	var vs []pipeline.Violation
	if cmd.Page.PageNumber < 1 {
		vs = append(vs, pipeline.Violation{Field: "page_number", Message: "page_number must be at least 1"})
	}
	if cmd.Page.PageSize < 1 {
		vs = append(vs, pipeline.Violation{Field: "page_size", Message: "page_size must be at least 1"})
	} else if cmd.Page.PageSize > MaxPageSize {
		vs = append(vs, pipeline.Violation{
			Field:   "page_size",
			Message: fmt.Sprintf("page_size must be at most %d", MaxPageSize),
		})
	}
	return vs
}

// QuoteIDRules validates operations addressed by quote id.
type QuoteIDRules struct{}

// Check implements pipeline.RuleSet.
func (QuoteIDRules) Check(id int64) []pipeline.Violation {
	if id <= 0 {
		return []pipeline.Violation{{Field: "id", Message: "id must be a positive integer"}}
	}
	return nil
}
