package repository

// CreateQuoteOptions holds parameters for inserting a new Quote.
type CreateQuoteOptions struct {
	Author  string
	Content string
}

// GetOneQuoteOptions holds filter parameters for fetching a single Quote.
// All non-empty fields are applied as AND conditions.
type GetOneQuoteOptions struct {
	Author  string
	Content string
}
