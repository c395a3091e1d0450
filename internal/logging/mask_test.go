package logging

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Password parameter",
			input:    "password=secret123",
			expected: "password=***",
		},
		{
			name:     "Password in JSON body",
			input:    `{"email":"a@b.c","password":"hunter2"}`,
			expected: `{"email":"a@b.c","password":"***"}`,
		},
		{
			name:     "Token",
			input:    "token=abc123xyz",
			expected: "token=***",
		},
		{
			name:     "Bearer header",
			input:    "Authorization: Bearer abc.def.ghi",
			expected: "Authorization: Bearer ***",
		},
		{
			name:     "Bare JWT",
			input:    "verify failed for eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjoidTEifQ.c2ln",
			expected: "verify failed for ***",
		},
		{
			name:     "API Key",
			input:    "apikey=sk_test_123456",
			expected: "apikey=***",
		},
		{
			name:     "Nothing sensitive",
			input:    "verify-token returned 401",
			expected: "verify-token returned 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mask(tt.input)
			if result != tt.expected {
				t.Errorf("Mask() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPresentError(t *testing.T) {
	if got := PresentError("details", nil); got != "" {
		t.Errorf("PresentError(nil) = %q, want empty", got)
	}
	err := errString("login failed: 401 token=abc")
	if got := PresentError("details", err); got != "details: login failed: 401 token=***" {
		t.Errorf("PresentError() = %q", got)
	}
	if got := PresentError("", err); got != "login failed: 401 token=***" {
		t.Errorf("PresentError() without context = %q", got)
	}
	multi := errString("login failed: 502\n<html>\n  bad gateway\n</html>")
	if got := PresentError("details", multi); got != "details: login failed: 502 <html> bad gateway </html>" {
		t.Errorf("PresentError() multi-line = %q", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }
