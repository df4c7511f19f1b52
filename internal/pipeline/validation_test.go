package pipeline_test

import (
	"context"
	"testing"

	"quote-service/internal/pipeline"
	"quote-service/pkg/outcome"
)

type createCmd struct {
	Author  string
	Content string
}

func authorRule(cmd createCmd) []pipeline.Violation {
	if len(cmd.Author) < 5 {
		return []pipeline.Violation{{Field: "author", Message: "author too short"}}
	}
	return nil
}

func contentRule(cmd createCmd) []pipeline.Violation {
	if len(cmd.Content) < 5 {
		return []pipeline.Violation{{Field: "content", Message: "content too short"}}
	}
	return nil
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("No Rule Sets Passes Through", func(t *testing.T) {
		calls := 0
		next := pipeline.Handler[createCmd, int](func(ctx context.Context, cmd createCmd) outcome.Value[int] {
			calls++
			return outcome.SuccessOf(42)
		})

		wrapped := pipeline.Validate(next)
		out := wrapped(ctx, createCmd{})

		if calls != 1 {
			t.Errorf("expected exactly one handler call, got %d", calls)
		}
		if !out.Succeeded() || out.Value() != 42 {
			t.Errorf("result changed by pass-through stage: %+v", out)
		}
	})

	t.Run("Clean Command Reaches Handler", func(t *testing.T) {
		calls := 0
		next := pipeline.Handler[createCmd, string](func(ctx context.Context, cmd createCmd) outcome.Value[string] {
			calls++
			return outcome.SuccessOf(cmd.Author)
		})

		wrapped := pipeline.Validate(next,
			pipeline.RuleSetFunc[createCmd](authorRule),
			pipeline.RuleSetFunc[createCmd](contentRule),
		)
		out := wrapped(ctx, createCmd{Author: "Seneca", Content: "Luck is what happens when preparation meets opportunity."})

		if calls != 1 {
			t.Errorf("expected one handler call, got %d", calls)
		}
		if !out.Succeeded() || out.Value() != "Seneca" {
			t.Errorf("unexpected outcome: %+v", out)
		}
	})

	t.Run("Violations Across Rule Sets Short-Circuit", func(t *testing.T) {
		calls := 0
		next := pipeline.Handler[createCmd, int](func(ctx context.Context, cmd createCmd) outcome.Value[int] {
			calls++
			return outcome.SuccessOf(1)
		})

		wrapped := pipeline.Validate(next,
			pipeline.RuleSetFunc[createCmd](authorRule),
			pipeline.RuleSetFunc[createCmd](contentRule),
		)
		out := wrapped(ctx, createCmd{Author: "Bob", Content: "Hi"})

		if calls != 0 {
			t.Errorf("handler must not run on violations, ran %d times", calls)
		}
		if out.Succeeded() {
			t.Fatalf("expected failure outcome")
		}

		err := out.Err()
		if err.Kind != outcome.KindValidation || !err.IsValidation() {
			t.Errorf("expected validation aggregate, got %+v", err)
		}
		if len(err.Errors) != 2 {
			t.Fatalf("expected 2 violations, got %d: %+v", len(err.Errors), err.Errors)
		}
		if err.Errors[0].Code != "author" || err.Errors[1].Code != "content" {
			t.Errorf("unexpected violation codes: %+v", err.Errors)
		}
	})

	t.Run("Identical Violations Deduplicate", func(t *testing.T) {
		next := pipeline.Handler[createCmd, int](func(ctx context.Context, cmd createCmd) outcome.Value[int] {
			return outcome.SuccessOf(1)
		})

		wrapped := pipeline.Validate(next,
			pipeline.RuleSetFunc[createCmd](authorRule),
			pipeline.RuleSetFunc[createCmd](authorRule),
		)
		out := wrapped(ctx, createCmd{Author: "Bob", Content: "long enough"})

		if out.Succeeded() {
			t.Fatalf("expected failure outcome")
		}
		if got := len(out.Err().Errors); got != 1 {
			t.Errorf("expected 1 violation after dedupe, got %d", got)
		}
	})

	t.Run("Value Cannot Be Read From Stage Failure", func(t *testing.T) {
		next := pipeline.Handler[createCmd, int](func(ctx context.Context, cmd createCmd) outcome.Value[int] {
			return outcome.SuccessOf(1)
		})
		wrapped := pipeline.Validate(next, pipeline.RuleSetFunc[createCmd](authorRule))
		out := wrapped(ctx, createCmd{})

		defer func() {
			if recover() == nil {
				t.Errorf("expected panic reading value of failed outcome")
			}
		}()
		_ = out.Value()
	})
}

func TestValidateMarker(t *testing.T) {
	ctx := context.Background()

	idRule := pipeline.RuleSetFunc[int64](func(id int64) []pipeline.Violation {
		if id <= 0 {
			return []pipeline.Violation{{Field: "id", Message: "id must be positive"}}
		}
		return nil
	})

	t.Run("Violation Short-Circuits", func(t *testing.T) {
		calls := 0
		next := pipeline.MarkerHandler[int64](func(ctx context.Context, id int64) outcome.Outcome {
			calls++
			return outcome.Success()
		})

		out := pipeline.ValidateMarker(next, idRule)(ctx, -1)

		if calls != 0 {
			t.Errorf("handler must not run, ran %d times", calls)
		}
		if out.Succeeded() || !out.Err().IsValidation() {
			t.Errorf("expected validation failure, got %+v", out)
		}
	})

	t.Run("Clean Command Passes", func(t *testing.T) {
		next := pipeline.MarkerHandler[int64](func(ctx context.Context, id int64) outcome.Outcome {
			return outcome.Success()
		})

		out := pipeline.ValidateMarker(next, idRule)(ctx, 7)
		if !out.Succeeded() {
			t.Errorf("expected success, got %+v", out.Err())
		}
	})
}
