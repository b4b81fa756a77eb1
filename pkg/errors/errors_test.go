package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForUnknownCode(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("BOGUS"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal metadata for unknown code, got %+v", meta)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "store write failed")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to unwrap to cause")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsFindsTypedError(t *testing.T) {
	t.Parallel()

	inner := New(CodeValidation, "quantity below minimum").WithDetails(map[string]string{"quantity": "too small"})
	wrapped := fmt.Errorf("handling request: %w", inner)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error to be found")
	}
	if typed.Code() != CodeValidation {
		t.Fatalf("unexpected code %s", typed.Code())
	}
	if typed.Details() == nil {
		t.Fatal("expected details to survive wrapping")
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
}
