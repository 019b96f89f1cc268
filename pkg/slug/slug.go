package slug

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// hashLength is the number of hex characters of the content hash kept as the
// uniqueness suffix.
const hashLength = 8

// Default maximum lengths for generated slugs.
const (
	DefaultMaxLength      = 32
	DefaultMultiMaxLength = 48
)

// nameDelimiter joins name fragments in multi-name slugs; hashDelimiter
// joins the name part to the hash suffix. extractSafeName never emits
// consecutive hyphens, so neither delimiter can occur inside a fragment.
const (
	nameDelimiter = "--"
	hashDelimiter = "---"
)

// hashFieldSep is hashed between names in Multi. 0xFF can never start a
// UTF-8 encoded rune, so overlapping name boundaries cannot produce the
// same digest.
const hashFieldSep = 0xFF

// lowercase applies full Unicode case mapping, not just the simple per-rune
// mapping of strings.ToLower. A cases.Caser is stateful, so one is built per
// call to keep all operations safe for concurrent use.
func lowercase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Option configures slug generation.
type Option func(*config)

// config holds the configuration for a single Safe or Multi call.
type config struct {
	maxLength int
	isValid   func(string) bool
}

func defaultConfig() *config {
	return &config{
		maxLength: 0, // package default applied per call
		isValid:   IsValidDefault,
	}
}

// WithMaxLength sets the maximum length of the generated slug.
// Default is DefaultMaxLength for Safe and DefaultMultiMaxLength for Multi.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithValidator sets the predicate Safe uses to decide whether a name can be
// used verbatim. Default is IsValidDefault.
func WithValidator(isValid func(string) bool) Option {
	return func(c *config) {
		if isValid != nil {
			c.isValid = isValid
		}
	}
}

// Safe generates a valid slug for any name. A name that already satisfies
// the validity predicate and the length bound is returned unchanged;
// anything else is reduced to a safe substring plus a hash of the original.
// Names containing "--" are always hashed, so a raw name can never imitate
// the hashed-slug shape.
//
// Safe is deterministic, and names it returns verbatim are stable: passing
// them through again returns them unchanged. It returns ErrMaxLengthTooSmall
// if the maximum length cannot fit the hash suffix.
func Safe(name string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	maxLength := cfg.maxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if strings.Contains(name, nameDelimiter) {
		return stripAndHash(name, maxLength)
	}
	if cfg.isValid(name) && (cfg.maxLength <= 0 || utf8.RuneCountInString(name) <= cfg.maxLength) {
		return name, nil
	}
	return stripAndHash(name, maxLength)
}

// Multi generates a single slug for an ordered sequence of names, of the
// shape "{name1}--{name2}---{hash}". The hash covers all names, so the
// result is unique for the sequence while each fragment stays recognizable.
//
// Returns ErrNoNames for an empty slice and ErrMaxLengthTooSmall when the
// maximum length cannot give each name at least two characters.
func Multi(names []string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if len(names) == 0 {
		return "", ErrNoNames
	}
	maxLength := cfg.maxLength
	if maxLength <= 0 {
		maxLength = DefaultMultiMaxLength
	}

	hasher := sha256.New()
	hasher.Write([]byte(names[0]))
	for _, name := range names[1:] {
		hasher.Write([]byte{hashFieldSep})
		hasher.Write([]byte(name))
	}
	nameHash := hex.EncodeToString(hasher.Sum(nil))[:hashLength]

	// Budget: hash plus the joining hyphen before it, then an equal share
	// per name, where each share also pays for its "--" join.
	available := maxLength - (hashLength + 1)
	nameMaxLength := available/len(names) - 2
	if nameMaxLength < 2 {
		return "", fmt.Errorf("%w: %d names do not fit in %d characters", ErrMaxLengthTooSmall, len(names), maxLength)
	}

	fragments := make([]string, len(names))
	for i, name := range names {
		fragments[i] = extractSafeName(name, nameMaxLength)
	}
	return strings.Join(fragments, nameDelimiter) + hashDelimiter + nameHash, nil
}

// stripAndHash produces "{safeName}---{hash}" within maxLength. The hash is
// the sha256 of the full original name, so two names that strip to the same
// substring still get distinct slugs.
func stripAndHash(name string, maxLength int) (string, error) {
	nameLength := maxLength - (hashLength + len(hashDelimiter))
	if nameLength < 1 {
		return "", fmt.Errorf("%w: need at least %d, got %d", ErrMaxLengthTooSmall, hashLength+len(hashDelimiter)+1, maxLength)
	}
	sum := sha256.Sum256([]byte(name))
	nameHash := hex.EncodeToString(sum[:])[:hashLength]
	// safeName ends with an alphanumeric and contains no "--", so "---"
	// occurs exactly once, at the join.
	return extractSafeName(name, nameLength) + hashDelimiter + nameHash, nil
}

// extractSafeName reduces name to a string that starts with a lowercase
// letter, ends with a lowercase letter or digit, contains only lowercase
// letters, digits, and single hyphens, and has length in [1, maxLength].
// Collisions are not its concern; callers append a hash of the full name.
func extractSafeName(name string, maxLength int) string {
	lowered := lowercase(name)

	var b strings.Builder
	b.Grow(len(lowered))
	prevHyphen := false
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		// collapse every unsafe run to a single hyphen
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}

	safeName := strings.TrimPrefix(b.String(), "-")
	if len(safeName) > maxLength {
		safeName = safeName[:maxLength]
	}
	safeName = strings.TrimSuffix(safeName, "-")

	if safeName != "" && !isLowerAlpha(safeName[0]) {
		// starts with a digit: prefix and re-truncate
		keep := maxLength - 2
		if keep < 0 {
			keep = 0
		}
		if len(safeName) > keep {
			safeName = safeName[:keep]
		}
		safeName = strings.TrimSuffix("x-"+safeName, "-")
	}
	if safeName == "" {
		safeName = "x"
	}
	return safeName
}
