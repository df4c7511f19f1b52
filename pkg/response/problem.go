package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quote-service/pkg/outcome"
)

// Problem is an RFC 7807 problem-details body. Errors is the validation
// extension: it is present only when the translated error is a validation
// aggregate and then carries the individual field-level errors.
type Problem struct {
	Type   string          `json:"type"`
	Title  string          `json:"title"`
	Status int             `json:"status"`
	Detail string          `json:"detail"`
	Errors []outcome.Error `json:"errors,omitempty"`
}

// NewProblem translates err into a problem body. The mapping is total over
// the error taxonomy:
//
//	Validation → 400  Problem → 400  NotFound → 404  Conflict → 409
//
// Anything else (including the unclassified Failure kind) falls through to a
// generic 500 that exposes no detail from the error itself.
func NewProblem(err outcome.Error) Problem {
	p := Problem{
		Status: http.StatusInternalServerError,
		Type:   typeInternalError,
		Title:  titleServerFailure,
		Detail: detailServerFailure,
	}

	switch err.Kind {
	case outcome.KindValidation, outcome.KindProblem:
		p.Status = http.StatusBadRequest
		p.Type = typeBadRequest
	case outcome.KindNotFound:
		p.Status = http.StatusNotFound
		p.Type = typeNotFound
	case outcome.KindConflict:
		p.Status = http.StatusConflict
		p.Type = typeConflict
	default:
		return p
	}

	p.Title = err.Code
	p.Detail = err.Description
	if err.IsValidation() {
		p.Errors = err.Errors
	}
	return p
}

// InternalProblem is the fixed body answered for unanticipated faults caught
// at the outermost boundary. It carries no detail from the fault.
func InternalProblem() Problem {
	return Problem{
		Status: http.StatusInternalServerError,
		Type:   typeInternalError,
		Title:  titleServerFailure,
		Detail: detailServerFailure,
	}
}

// TooManyRequests is the problem body written by the rate limiter.
func TooManyRequests() Problem {
	return Problem{
		Status: http.StatusTooManyRequests,
		Type:   typeTooManyRequest,
		Title:  "Too many requests",
		Detail: "Request rate limit exceeded",
	}
}

// WriteProblem writes p with the problem+json media type.
func WriteProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", ContentTypeProblem)
	c.JSON(p.Status, p)
}

// Fail translates a failed outcome into its problem response. Calling it
// with a successful outcome is a programmer error and panics.
func Fail(c *gin.Context, o outcome.Outcome) {
	if o.Succeeded() {
		panic("response: Fail called on a successful outcome")
	}
	WriteProblem(c, NewProblem(o.Err()))
}
