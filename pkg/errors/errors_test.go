package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSize, "size must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidSize {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSize)
	}

	if err.Message != "size must be positive, got -3" {
		t.Errorf("Message = %v, want %v", err.Message, "size must be positive, got -3")
	}

	expected := "INVALID_SIZE: size must be positive, got -3"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodePackagerFailed, cause, "iconutil exited")

	if err.Code != ErrCodePackagerFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodePackagerFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
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
			err:      New(ErrCodeFileNotFound, "test"),
			code:     ErrCodeFileNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeFileNotFound, "test"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      fmt.Errorf("outer: %w", New(ErrCodePackagerUnavailable, "test")),
			code:     ErrCodePackagerUnavailable,
			expected: true,
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
	if got := GetCode(New(ErrCodeRenderFailed, "test")); got != ErrCodeRenderFailed {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeRenderFailed)
	}

	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "output directory must not be empty")
	if got := UserMessage(err); got != "output directory must not be empty" {
		t.Errorf("UserMessage() = %v", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v", got)
	}
}
