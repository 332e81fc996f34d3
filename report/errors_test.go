package report

import (
	"context"
	"errors"
	"testing"

	errorslib "github.com/goliatone/go-errors"
)

func TestKindFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"report error", NewError(KindNotFound, "missing", nil), KindNotFound},
		{"wrapped report error", NewError(KindValidation, "bad input", errors.New("inner")), KindValidation},
		{"deadline", context.DeadlineExceeded, KindTimeout},
		{"canceled", context.Canceled, KindCanceled},
		{"plain", errors.New("boom"), KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindFromError(tc.err); got != tc.want {
				t.Fatalf("kind = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAsGoError_Categories(t *testing.T) {
	notFound := AsGoError(NewError(KindNotFound, "test record missing", nil))
	if notFound.Category != errorslib.CategoryNotFound {
		t.Fatalf("expected not-found category, got %v", notFound.Category)
	}

	validation := AsGoError(NewError(KindValidation, "empty batch", nil))
	if validation.Category != errorslib.CategoryValidation {
		t.Fatalf("expected validation category, got %v", validation.Category)
	}

	if AsGoError(nil) != nil {
		t.Fatalf("expected nil passthrough")
	}
}

func TestReportError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewError(KindInternal, "outer", inner)
	if !errors.Is(err, inner) {
		t.Fatalf("expected errors.Is to find inner error")
	}
	if err.Error() != "outer: inner" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
