package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box coverage for the extraction and hashing helpers that Safe and
// Multi are built on.

func TestExtractSafeName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{name: "already safe", input: "myname", maxLength: 20, want: "myname"},
		{name: "spaces and punctuation", input: "My Cool! Name", maxLength: 20, want: "my-cool-name"},
		{name: "uppercase lowered", input: "MyName", maxLength: 20, want: "myname"},
		{name: "unsafe run collapses to one hyphen", input: "a !?# b", maxLength: 20, want: "a-b"},
		{name: "leading unsafe stripped", input: "!!name", maxLength: 20, want: "name"},
		{name: "truncation", input: "hello world", maxLength: 8, want: "hello-wo"},
		{name: "truncation leaves no trailing hyphen", input: "hello world", maxLength: 6, want: "hello"},
		{name: "leading digit prefixed", input: "9lives", maxLength: 10, want: "x-9lives"},
		{name: "leading digit prefix re-truncates", input: "123456789", maxLength: 6, want: "x-1234"},
		{name: "only unsafe chars", input: "!!!", maxLength: 5, want: "x"},
		{name: "only hyphens", input: "---", maxLength: 5, want: "x"},
		{name: "empty", input: "", maxLength: 5, want: "x"},
		{name: "diacritics are stripped not mapped", input: "Café", maxLength: 10, want: "caf"},
		{name: "full case mapping", input: "İstanbul", maxLength: 10, want: "i-stanbul"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractSafeName(tt.input, tt.maxLength))
		})
	}
}

func TestExtractSafeNameGuarantees(t *testing.T) {
	inputs := []string{
		"My Cool! Name",
		"9 to 5",
		"--x--",
		"émoji 🎉 everywhere",
		"A",
		" ",
		strings.Repeat("b-", 50),
	}
	for _, input := range inputs {
		got := extractSafeName(input, 20)
		assert.GreaterOrEqual(t, len(got), 1, "extractSafeName(%q)", input)
		assert.LessOrEqual(t, len(got), 20, "extractSafeName(%q)", input)
		assert.True(t, isLowerAlpha(got[0]), "extractSafeName(%q) = %q starts badly", input, got)
		assert.True(t, isLowerAlphanum(got[len(got)-1]), "extractSafeName(%q) = %q ends badly", input, got)
		assert.NotContains(t, got, "--", "extractSafeName(%q) = %q", input, got)
	}
}

func TestStripAndHash(t *testing.T) {
	// sha256("test") begins 9f86d081, so the full slug is stable.
	got, err := stripAndHash("test", 32)
	require.NoError(t, err)
	assert.Equal(t, "test---9f86d081", got)
}

func TestStripAndHashBounds(t *testing.T) {
	_, err := stripAndHash("anything", 11)
	assert.ErrorIs(t, err, ErrMaxLengthTooSmall)

	got, err := stripAndHash("anything", 12)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	got, err = stripAndHash(strings.Repeat("long name ", 10), 32)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 32)
	assert.True(t, IsValidObjectName(got))
}
