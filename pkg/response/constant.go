package response

const (
	MessageSuccess = "Success"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Problem type URIs per RFC 7231 / RFC 6585 section anchors.
const (
	typeBadRequest     = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	typeNotFound       = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	typeConflict       = "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	typeInternalError  = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	typeTooManyRequest = "https://tools.ietf.org/html/rfc6585#section-4"

	titleServerFailure  = "Server failure"
	detailServerFailure = "An unexpected error occurred"

	// ContentTypeProblem is the RFC 7807 media type for problem bodies.
	ContentTypeProblem = "application/problem+json"
)
