package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "token %q: bad length", "DU")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != `token "DU": bad length` {
		t.Errorf("Message = %v, want %v", err.Message, `token "DU": bad length`)
	}

	expected := `INVALID_FORMAT: token "DU": bad length`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeUsage, cause, "open input")

	if err.Code != ErrCodeUsage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUsage)
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
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeInvalidFormat,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidFormat, "test"),
			code:     ErrCodeDisconnected,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeUsage, New(ErrCodeInvalidFormat, "inner"), "outer"),
			code:     ErrCodeUsage,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidFormat,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidFormat,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeDisconnected, "test"),
			expected: ErrCodeDisconnected,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUsage, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped cause",
			err:      Wrap(ErrCodeUsage, errors.New("no such file"), "cannot read input"),
			expected: "cannot read input: no such file",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
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

func TestIsPerGraph(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidFormat, "x"), true},
		{New(ErrCodeDisconnected, "x"), true},
		{New(ErrCodeUsage, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{errors.New("io"), false},
	}
	for _, tt := range tests {
		if got := IsPerGraph(tt.err); got != tt.want {
			t.Errorf("IsPerGraph(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}

	if !IsFormat(New(ErrCodeInvalidFormat, "x")) {
		t.Error("IsFormat should match INVALID_FORMAT")
	}
	if !IsDisconnected(New(ErrCodeDisconnected, "x")) {
		t.Error("IsDisconnected should match DISCONNECTED_GRAPH")
	}
	if !IsUsage(New(ErrCodeUsage, "x")) {
		t.Error("IsUsage should match USAGE")
	}
}
