package outcome

// Kind classifies an Error into one of the closed failure categories the
// HTTP boundary knows how to translate.
type Kind int

const (
	// KindFailure is the unclassified default; translates to 500.
	KindFailure Kind = iota
	// KindValidation marks malformed caller input; translates to 400.
	KindValidation
	// KindProblem marks a well-formed but semantically invalid request; 400.
	KindProblem
	// KindNotFound marks a missing resource; 404.
	KindNotFound
	// KindConflict marks a state conflict; 409.
	KindConflict
)

// String returns the category name, mostly for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProblem:
		return "problem"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "failure"
	}
}

// Error is a structured, immutable failure descriptor. It is plain data:
// pass it by value and never mutate it after construction.
//
// Code is machine-readable and namespaced ("Quote.NotFound"); Description is
// for humans. Errors is populated only on validation aggregates built with
// NewValidationError / ValidationFrom and carries the individual field-level
// failures.
type Error struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Kind        Kind    `json:"type"`
	Errors      []Error `json:"errors,omitempty"`
}

// None is the sentinel "no error" value carried by successful outcomes.
var None = Error{}

// NullValue reports that a required value was null/absent. It is the error
// produced by FromPtr when lifting a nil pointer.
var NullValue = Error{Code: "General.Null", Description: "A required value was null", Kind: KindFailure}

const (
	validationCode        = "Validation.General"
	validationDescription = "One or more validation errors occurred"
)

// NewError builds a plain Error.
func NewError(code, description string, kind Kind) Error {
	return Error{Code: code, Description: description, Kind: kind}
}

// NewValidationError aggregates field-level errors into the composite
// validation error. The nested slice is copied so the aggregate stays
// immutable, and is never nil: a validation aggregate with zero entries is
// still recognizable as one.
func NewValidationError(errs []Error) Error {
	nested := make([]Error, len(errs))
	copy(nested, errs)
	return Error{
		Code:        validationCode,
		Description: validationDescription,
		Kind:        KindValidation,
		Errors:      nested,
	}
}

// ValidationFrom builds the composite validation error from a batch of
// attempted sub-operations, keeping only the errors of the failed ones in
// their relative order.
func ValidationFrom(outcomes ...Outcome) Error {
	errs := make([]Error, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Succeeded() {
			errs = append(errs, o.Err())
		}
	}
	return NewValidationError(errs)
}

// IsNone reports whether e is the "no error" sentinel.
func (e Error) IsNone() bool {
	return e.Code == "" && e.Description == "" && e.Kind == KindFailure && e.Errors == nil
}

// IsValidation reports whether e is a validation aggregate carrying
// field-level errors.
func (e Error) IsValidation() bool {
	return e.Kind == KindValidation && e.Errors != nil
}

// Equal compares two errors field by field, including nested errors.
// Error holds a slice, so == is not available.
func (e Error) Equal(other Error) bool {
	if e.Code != other.Code || e.Description != other.Description || e.Kind != other.Kind {
		return false
	}
	if len(e.Errors) != len(other.Errors) {
		return false
	}
	for i := range e.Errors {
		if !e.Errors[i].Equal(other.Errors[i]) {
			return false
		}
	}
	return true
}
