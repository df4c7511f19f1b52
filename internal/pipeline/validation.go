// Package pipeline provides the generic validation stage that runs in front
// of every usecase handler. Rule sets are declared per operation type and
// registered explicitly where the handler is wired (see the delivery layer
// constructors); there is no runtime discovery.
package pipeline

import (
	"context"

	"quote-service/pkg/outcome"
)

// Handler executes one operation and returns a value-bearing outcome.
type Handler[C, T any] func(ctx context.Context, cmd C) outcome.Value[T]

// MarkerHandler executes one operation and returns a valueless outcome.
type MarkerHandler[C any] func(ctx context.Context, cmd C) outcome.Outcome

// Violation is a single failed rule: the field that broke it and the rule's
// message. Identical violations reported by different rule sets collapse
// into one.
type Violation struct {
	Field   string
	Message string
}

// RuleSet checks an operation before its handler runs. Implementations must
// be pure: no I/O, no stored state, violations only.
type RuleSet[C any] interface {
	Check(cmd C) []Violation
}

// RuleSetFunc adapts a plain function to a RuleSet.
type RuleSetFunc[C any] func(cmd C) []Violation

// Check implements RuleSet.
func (f RuleSetFunc[C]) Check(cmd C) []Violation { return f(cmd) }

// Validate wraps next so that every call first runs the given rule sets.
// All violations from all rule sets are collected and deduplicated; if any
// remain, a validation failure typed for T is returned and next is never
// invoked. With no rule sets (or no violations) the call passes through
// unchanged, context included.
func Validate[C, T any](next Handler[C, T], rules ...RuleSet[C]) Handler[C, T] {
	if len(rules) == 0 {
		return next
	}
	return func(ctx context.Context, cmd C) outcome.Value[T] {
		if err, failed := check(cmd, rules); failed {
			return outcome.FailureOf[T](err)
		}
		return next(ctx, cmd)
	}
}

// ValidateMarker is Validate for handlers returning a valueless outcome.
func ValidateMarker[C any](next MarkerHandler[C], rules ...RuleSet[C]) MarkerHandler[C] {
	if len(rules) == 0 {
		return next
	}
	return func(ctx context.Context, cmd C) outcome.Outcome {
		if err, failed := check(cmd, rules); failed {
			return outcome.Failure(err)
		}
		return next(ctx, cmd)
	}
}

// check runs every rule set against cmd and folds the surviving violations
// into a single validation aggregate. Order is first occurrence across rule
// sets; duplicates are dropped.
func check[C any](cmd C, rules []RuleSet[C]) (outcome.Error, bool) {
	var violations []Violation
	seen := make(map[Violation]struct{})
	for _, rs := range rules {
		for _, v := range rs.Check(cmd) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			violations = append(violations, v)
		}
	}
	if len(violations) == 0 {
		return outcome.None, false
	}

	errs := make([]outcome.Error, len(violations))
	for i, v := range violations {
		errs[i] = outcome.NewError(v.Field, v.Message, outcome.KindValidation)
	}
	return outcome.NewValidationError(errs), true
}
