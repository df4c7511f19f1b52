package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"quote-service/pkg/outcome"
	"quote-service/pkg/response"
)

func TestNewProblemPolicyTable(t *testing.T) {
	cases := []struct {
		name       string
		kind       outcome.Kind
		wantStatus int
		wantSuffix string
	}{
		{"Validation", outcome.KindValidation, http.StatusBadRequest, "#section-6.5.1"},
		{"Problem", outcome.KindProblem, http.StatusBadRequest, "#section-6.5.1"},
		{"NotFound", outcome.KindNotFound, http.StatusNotFound, "#section-6.5.4"},
		{"Conflict", outcome.KindConflict, http.StatusConflict, "#section-6.5.8"},
		{"Failure", outcome.KindFailure, http.StatusInternalServerError, "#section-6.6.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := outcome.NewError("Quote.Test", "something happened", tc.kind)
			p := response.NewProblem(err)

			if p.Status != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, p.Status)
			}
			if !strings.HasSuffix(p.Type, tc.wantSuffix) {
				t.Errorf("expected type ending %q, got %q", tc.wantSuffix, p.Type)
			}

			if tc.kind == outcome.KindFailure {
				if p.Title != "Server failure" {
					t.Errorf("default title: expected Server failure, got %q", p.Title)
				}
				if p.Detail != "An unexpected error occurred" {
					t.Errorf("default detail: got %q", p.Detail)
				}
			} else {
				if p.Title != err.Code {
					t.Errorf("expected title %q, got %q", err.Code, p.Title)
				}
				if p.Detail != err.Description {
					t.Errorf("expected detail %q, got %q", err.Description, p.Detail)
				}
			}
		})
	}
}

func TestNewProblemValidationExtension(t *testing.T) {
	t.Run("Aggregate Carries Errors", func(t *testing.T) {
		nested := []outcome.Error{
			outcome.NewError("author", "too short", outcome.KindValidation),
			outcome.NewError("content", "too short", outcome.KindValidation),
		}
		p := response.NewProblem(outcome.NewValidationError(nested))

		if len(p.Errors) != 2 {
			t.Fatalf("expected 2 nested errors, got %d", len(p.Errors))
		}
		if p.Errors[0].Code != "author" {
			t.Errorf("unexpected nested error: %+v", p.Errors[0])
		}
	})

	t.Run("Plain Errors Carry No Extension", func(t *testing.T) {
		for _, kind := range []outcome.Kind{outcome.KindValidation, outcome.KindProblem, outcome.KindNotFound, outcome.KindConflict, outcome.KindFailure} {
			p := response.NewProblem(outcome.NewError("Quote.Test", "x", kind))
			if p.Errors != nil {
				t.Errorf("kind %v: expected no errors extension, got %+v", kind, p.Errors)
			}
		}
	})
}

func TestFail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Writes Problem JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Fail(c, outcome.Failure(outcome.NewError("Quote.NotFound", "quote not found", outcome.KindNotFound)))

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, response.ContentTypeProblem) {
			t.Errorf("expected %s content type, got %s", response.ContentTypeProblem, ct)
		}

		var p response.Problem
		if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if p.Title != "Quote.NotFound" || p.Status != http.StatusNotFound {
			t.Errorf("unexpected body: %+v", p)
		}
	})

	t.Run("Panics On Successful Outcome", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		defer func() {
			if recover() == nil {
				t.Errorf("expected panic when failing a successful outcome")
			}
		}()
		response.Fail(c, outcome.Success())
	})
}

func TestInternalProblemLeaksNothing(t *testing.T) {
	p := response.InternalProblem()
	if p.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", p.Status)
	}
	if p.Title != "Server failure" || p.Detail != "An unexpected error occurred" {
		t.Errorf("unexpected fixed body: %+v", p)
	}
	if p.Errors != nil {
		t.Errorf("internal problem must carry no extension")
	}
}
