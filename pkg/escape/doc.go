// Package escape provides lossless, reversible escaping of arbitrary strings
// into a caller-defined safe character set.
//
// Any character outside the safe set is replaced by its UTF-8 bytes, each
// encoded as the escape character followed by two uppercase hex digits.
// Because the escape character itself is never part of the effective safe set
// (unless collisions are explicitly allowed), the transform is unambiguous
// and Unescape recovers the original string byte-for-byte.
//
// Basic usage:
//
//	import "github.com/minrk/escapism/pkg/escape"
//
//	e := escape.Escape("sposmål")
//	// Output: "sposm_C3_A5l"
//
//	s, err := escape.Unescape("sposm_C3_A5l")
//	// Output: "sposmål", nil
//
// # Configuration Options
//
// Safe replaces the default safe set (ASCII letters and digits):
//
//	escape.Escape("abc-def", escape.Safe("abcdef"))
//	// Output: "abc_2Ddef"
//
// Char changes the escape character (default '_'):
//
//	escape.Escape("some file", escape.Char('%'))
//	// Output: "some%20file"
//
// AllowCollisions keeps the escape character in the safe set, so occurrences
// of it in the input pass through unescaped. The output is then ambiguous and
// Unescape cannot reliably invert it; only use this when unescaping will
// never happen:
//
//	escape.Escape("foo-bar ", escape.Char('-'), escape.AllowCollisions())
//	// Output: "foo-bar-20"
//
// Without AllowCollisions, an escape character found in the safe set is
// removed from the effective set and a warning is logged through the
// configured slog logger (WithLogger, default slog.Default()). The call still
// succeeds and its output round-trips.
//
// # Reversibility
//
// Unescape(Escape(s)) == s holds for every string s as long as
// AllowCollisions was not used. Unescape is lenient: an escape character not
// followed by two hex digits is left in place as literal text. The only error
// case is substituted bytes that do not form valid UTF-8, reported as
// ErrInvalidUTF8.
//
// # Thread Safety
//
// All functions are pure and stateless. The effective safe set is built
// fresh on every call; option values are never retained or mutated, so
// concurrent use needs no coordination.
package escape
