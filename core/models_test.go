package core

import (
	"testing"
)

func TestContentToken(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same token",
			content: "Worst rental experience of my life",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer post title that should still hash consistently across runs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok1 := ContentToken(tt.content)
			tok2 := ContentToken(tt.content)

			if tok1 != tok2 {
				t.Errorf("ContentToken() produced different tokens for same content: %s vs %s", tok1, tok2)
			}
			if len(tok1) != 12 {
				t.Errorf("ContentToken() length = %d, want 12", len(tok1))
			}
		})
	}
}

func TestContentToken_Different(t *testing.T) {
	tok1 := ContentToken("title one")
	tok2 := ContentToken("title two")

	if tok1 == tok2 {
		t.Errorf("ContentToken() produced same token for different content")
	}
}
