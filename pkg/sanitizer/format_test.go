package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bruce-pain/authkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Alice@Example.COM", "alice@example.com"},
		{"trims whitespace", "  alice@example.com  ", "alice@example.com"},
		{"collapses consecutive dots", "ali..ce@example.com", "ali.ce@example.com"},
		{"trims leading and trailing dots", ".alice.@example.com", "alice@example.com"},
		{"preserves invalid input", "not-an-email", "not-an-email"},
		{"preserves multiple at signs", "a@b@c", "a@b@c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestExtractEmailDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", sanitizer.ExtractEmailDomain("alice@Example.Com"))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("alice@"))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("not-an-email"))
}
