package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("timeout")
	ctx := map[string]any{
		"service": "translator",
		"region":  "westeurope",
	}

	err := WrapWithContext(ErrCodeTimeout, "translation request failed", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["service"] != "translator" {
		t.Errorf("expected service to be translator")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeUnauthorized,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
		ErrCodePayloadTooLarge,
		ErrCodeNotImplemented,
		ErrCodeUnconfigured,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}

func TestNotImplemented(t *testing.T) {
	err := NotImplemented("vision.analyze_image")

	if err.Code != ErrCodeNotImplemented {
		t.Errorf("expected code %s, got %s", ErrCodeNotImplemented, err.Code)
	}
	if err.Context["function"] != "vision.analyze_image" {
		t.Errorf("expected function in context, got %v", err.Context)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), ""},
		{"structured", Unconfigured("search not configured"), ErrCodeUnconfigured},
		{"wrapped with fmt", fmt.Errorf("probe: %w", NotImplemented("f")), ErrCodeNotImplemented},
		{"outermost wins", Wrap(ErrCodeInternal, "outer", Unconfigured("inner")), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	nested := Wrap(ErrCodeInternal, "outer", fmt.Errorf("mid: %w", Unconfigured("inner")))

	if !HasCode(nested, ErrCodeUnconfigured) {
		t.Error("expected nested unconfigured code to be found")
	}
	if !HasCode(nested, ErrCodeInternal) {
		t.Error("expected outer internal code to be found")
	}
	if HasCode(nested, ErrCodeNotImplemented) {
		t.Error("did not expect not implemented code")
	}
	if HasCode(errors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
}

func TestTypedNil(t *testing.T) {
	var se *StructuredError
	var err error = se

	if got := CodeOf(err); got != "" {
		t.Errorf("CodeOf(typed nil) = %q, want empty", got)
	}
	if HasCode(err, ErrCodeNotImplemented) {
		t.Error("HasCode(typed nil) = true, want false")
	}
	if got := err.Error(); got != "<nil>" {
		t.Errorf("Error() = %q, want <nil>", got)
	}
	if errors.Unwrap(err) != nil {
		t.Error("Unwrap(typed nil) should be nil")
	}
}
