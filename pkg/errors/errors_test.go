package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimension, "grid size %d out of range", 0)

	if err.Code != ErrCodeInvalidDimension {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDimension)
	}

	if err.Message != "grid size 0 out of range" {
		t.Errorf("Message = %v, want %v", err.Message, "grid size 0 out of range")
	}

	expected := "INVALID_DIMENSION: grid size 0 out of range"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeMalformedState, cause, "decode snapshot")

	if err.Code != ErrCodeMalformedState {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedState)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeOutOfBounds, "test"),
			code:     ErrCodeOutOfBounds,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeOutOfBounds, "test"),
			code:     ErrCodeUnknownTask,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("load: %w", New(ErrCodeMalformedState, "inner")),
			code:     ErrCodeMalformedState,
			expected: true,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeMalformedState, New(ErrCodeInvalidDimension, "inner"), "outer"),
			code:     ErrCodeMalformedState,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownTask, "x")); got != ErrCodeUnknownTask {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownTask)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
		{
			"nested cause",
			Wrap(ErrCodeMalformedState, New(ErrCodeInvalidDimension, "size 0"), "load snapshot"),
			"load snapshot: size 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidDimension, 400},
		{ErrCodeMalformedState, 400},
		{ErrCodeUnknownTask, 400},
		{ErrCodeSessionNotFound, 404},
		{ErrCodeUnsupported, 501},
		{ErrCodeInternal, 500},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatus(New(tt.code, "x")); got != tt.want {
				t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
	if got := HTTPStatus(errors.New("plain")); got != 500 {
		t.Errorf("HTTPStatus(plain) = %d, want 500", got)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidDimension,
		ErrCodeInvalidParameter,
		ErrCodeOutOfBounds,
		ErrCodeUnknownTask,
		ErrCodeMalformedState,
		ErrCodeNotFound,
		ErrCodeSessionNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
