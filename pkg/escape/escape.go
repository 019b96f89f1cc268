package escape

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// DefaultSafe is the conservative default safe set: ASCII letters and digits.
const DefaultSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultEscapeChar is the default escape character.
const DefaultEscapeChar = '_'

const upperhex = "0123456789ABCDEF"

// Option configures the escaping behavior.
type Option func(*config)

// config holds the configuration for a single Escape or Unescape call.
type config struct {
	safe            string
	escapeChar      rune
	allowCollisions bool
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{
		safe:       DefaultSafe,
		escapeChar: DefaultEscapeChar,
	}
}

// Safe replaces the safe character set. Only membership matters; the string
// is treated as read-only and a private set is built from it on every call.
func Safe(chars string) Option {
	return func(c *config) {
		c.safe = chars
	}
}

// Char sets the escape character.
// Default is '_'.
func Char(r rune) Option {
	return func(c *config) {
		c.escapeChar = r
	}
}

// AllowCollisions keeps the escape character in the effective safe set, so
// occurrences of it in the input pass through unescaped. Output produced in
// this mode is ambiguous and cannot be reliably unescaped.
func AllowCollisions() Option {
	return func(c *config) {
		c.allowCollisions = true
	}
}

// WithLogger sets the logger used for the ambiguous-configuration warning.
// Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Escape encodes s so that the result only contains characters from the safe
// set plus two-hex-digit escape sequences. Each character outside the safe
// set is replaced by its UTF-8 bytes, each byte written as the escape
// character followed by two uppercase hex digits.
//
// If the escape character is found in the safe set without AllowCollisions,
// it is removed from the effective set and a warning is logged; the output
// still round-trips through Unescape.
func Escape(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Fresh effective set per call; the safe string is never mutated.
	safe := make(map[rune]struct{}, len(cfg.safe))
	for _, r := range cfg.safe {
		safe[r] = struct{}{}
	}
	if cfg.allowCollisions {
		safe[cfg.escapeChar] = struct{}{}
	} else if _, ok := safe[cfg.escapeChar]; ok {
		delete(safe, cfg.escapeChar)
		logger := cfg.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("escape character cannot be a safe character; removed from safe set, set AllowCollisions to keep it",
			"escape_char", string(cfg.escapeChar))
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := safe[r]; ok {
			b.WriteRune(r)
			continue
		}
		escapeRune(&b, r, cfg.escapeChar)
	}
	return b.String()
}

// escapeRune writes each UTF-8 byte of r as escapeChar plus two hex digits.
func escapeRune(b *strings.Builder, r, escapeChar rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, octet := range buf[:n] {
		b.WriteRune(escapeChar)
		b.WriteByte(upperhex[octet>>4])
		b.WriteByte(upperhex[octet&0x0F])
	}
}

// Unescape reverses Escape. The escape character must match the one used to
// escape. Hex digits are matched case-insensitively. An escape character not
// followed by two hex digits is left in place as literal text.
//
// Returns ErrInvalidUTF8 if the substituted byte sequence does not decode as
// UTF-8, which happens when the input was not produced by Escape with the
// same escape character.
func Unescape(s string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	ec := string(cfg.escapeChar)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], ec) {
			j := i + len(ec)
			if j+1 < len(s) {
				hi, okHi := hexVal(s[j])
				lo, okLo := hexVal(s[j+1])
				if okHi && okLo {
					out = append(out, hi<<4|lo)
					i = j + 2
					continue
				}
			}
		}
		out = append(out, s[i])
		i++
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return string(out), nil
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
