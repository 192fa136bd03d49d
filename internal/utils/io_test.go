package utils

import (
	"strings"
	"testing"
)

func TestTrimValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no newline", "secret", "secret"},
		{"unix newline", "secret\n", "secret"},
		{"windows newline", "secret\r\n", "secret"},
		{"only one newline removed", "secret\n\n", "secret\n"},
		{"surrounding spaces kept", "  secret  \n", "  secret  "},
		{"unicode", "δοκιμή\n", "δοκιμή"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimValue([]byte(tt.input)); got != tt.want {
				t.Errorf("TrimValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	data, err := readAll(strings.NewReader("value\n"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "value\n" {
		t.Errorf("Expected %q, got %q", "value\n", data)
	}

	if _, err := readAll(strings.NewReader("")); err == nil {
		t.Errorf("Expected error for empty input, got nil")
	}
}
