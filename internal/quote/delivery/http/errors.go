package http

import "quote-service/pkg/outcome"

// errMalformedRequest covers transport-level decode failures (bad JSON, bad
// query types, non-numeric path ids) that never reach the rule sets.
func errMalformedRequest(err error) outcome.Error {
	return outcome.NewError("Request.Malformed", err.Error(), outcome.KindValidation)
}
