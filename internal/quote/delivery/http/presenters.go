package http

import (
	"quote-service/internal/quote"
	"quote-service/pkg/paging"
	"quote-service/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

func (r createReq) toInput() quote.CreateQuoteInput {
	return quote.CreateQuoteInput{
		Author:  r.Author,
		Content: r.Content,
	}
}

// ---

type listReq struct {
	PageNumber int `form:"page_number"`
	PageSize   int `form:"page_size"`
}

// toInput maps absent page params to the defaults. Explicitly negative
// values are left alone so the rule set rejects them.
func (r listReq) toInput() quote.ListQuotesInput {
	p := paging.Params{PageNumber: r.PageNumber, PageSize: r.PageSize}
	if p.PageNumber == 0 {
		p.PageNumber = paging.DefaultPageNumber
	}
	if p.PageSize == 0 {
		p.PageSize = paging.DefaultPageSize
	}
	return quote.ListQuotesInput{Page: p}
}

// --- Response DTOs ---

type quoteResp struct {
	ID        int64             `json:"id"`
	Author    string            `json:"author"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newQuoteResp(q quote.Quote) quoteResp {
	return quoteResp{
		ID:        q.ID,
		Author:    q.Author,
		Content:   q.Content,
		CreatedAt: response.DateTime(q.CreatedAt),
	}
}

type createResp struct {
	Quote quoteResp `json:"quote"`
}

func (h *handler) newCreateResp(out quote.CreateQuoteOutput) createResp {
	return createResp{Quote: newQuoteResp(out.Quote)}
}

type listResp struct {
	Items           []quoteResp `json:"items"`
	TotalCount      int         `json:"total_count"`
	PageNumber      int         `json:"page_number"`
	PageSize        int         `json:"page_size"`
	TotalPages      int         `json:"total_pages"`
	HasNextPage     bool        `json:"has_next_page"`
	HasPreviousPage bool        `json:"has_previous_page"`
}

func (h *handler) newListResp(out quote.ListQuotesOutput) listResp {
	items := make([]quoteResp, len(out.Page.Items))
	for i, q := range out.Page.Items {
		items[i] = newQuoteResp(q)
	}
	return listResp{
		Items:           items,
		TotalCount:      out.Page.TotalCount,
		PageNumber:      out.Page.PageNumber,
		PageSize:        out.Page.PageSize,
		TotalPages:      out.Page.TotalPages,
		HasNextPage:     out.Page.HasNextPage,
		HasPreviousPage: out.Page.HasPreviousPage,
	}
}

type detailResp struct {
	Quote quoteResp `json:"quote"`
}

func (h *handler) newDetailResp(out quote.DetailQuoteOutput) detailResp {
	return detailResp{Quote: newQuoteResp(out.Quote)}
}
