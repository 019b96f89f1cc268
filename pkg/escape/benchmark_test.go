package escape_test

import (
	"testing"

	"github.com/minrk/escapism/pkg/escape"
)

func BenchmarkEscape(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = escape.Escape("some user@example.com with spaces/slashes")
	}
}

func BenchmarkEscapeUnicode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = escape.Escape("≠¡™£¢∞§¶¨• sposmål godtbrød")
	}
}

func BenchmarkUnescape(b *testing.B) {
	escaped := escape.Escape("some user@example.com with spaces/slashes")
	for i := 0; i < b.N; i++ {
		_, _ = escape.Unescape(escaped)
	}
}
