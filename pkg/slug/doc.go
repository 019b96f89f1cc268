// Package slug generates identifiers that satisfy strict DNS-label-like
// naming rules, guaranteeing uniqueness with a content-hash suffix.
//
// Unlike lossless escaping, slug generation is one-way: names that already
// satisfy the validity rules pass through unchanged, and everything else is
// reduced to a safe substring plus an 8-hex-character hash of the original.
// The hash makes collisions between distinct inputs vanishingly unlikely,
// and the delimiter layout makes a hashed slug structurally distinct from
// any raw valid name.
//
// Basic usage:
//
//	import "github.com/minrk/escapism/pkg/slug"
//
//	s, _ := slug.Safe("myname")
//	// Output: "myname" (already valid, used as-is)
//
//	s, _ = slug.Safe("My_Name!")
//	// Output: "my-name---<8 hex chars>"
//
//	s, _ = slug.Multi([]string{"alice", "server1"})
//	// Output: "alice--server1---<8 hex chars>"
//
// # Validity Rules
//
// IsValidObjectName checks the strictest rules, satisfying the DNS label
// requirements of both RFC 1035 and RFC 1123: 1-63 characters, starting with
// a lowercase letter, ending with a lowercase letter or digit, containing
// only lowercase letters, digits, and hyphens. IsValidLabel checks the
// looser label-value rules (case-insensitive, dots and underscores allowed,
// empty permitted). Safe uses IsValidObjectName unless WithValidator
// overrides it.
//
// # Configuration Options
//
// WithMaxLength bounds the slug length (default 32 for Safe, 48 for Multi):
//
//	s, _ := slug.Safe("a-rather-long-deployment-name-here", slug.WithMaxLength(24))
//	// Output: "a-rather-long---<8 hex chars>"
//
// WithValidator substitutes the validity predicate used by Safe:
//
//	s, _ := slug.Safe("Mixed_Case", slug.WithValidator(slug.IsValidLabel))
//	// Output: "Mixed_Case" (valid as a label, kept verbatim)
//
// # Collision Freedom
//
// Hashed slugs have the shape "{name}---{hash}". The extracted name part
// never contains consecutive hyphens, so "---" appears exactly once, and a
// raw valid name routed through Safe can never contain "--" at all (such
// names are unconditionally hashed). Multi-name slugs join fragments with
// "--" and feed the hash a 0xFF delimiter byte between names; 0xFF cannot
// start a UTF-8 sequence, so shifting characters across name boundaries
// always changes the hash.
//
// # Errors
//
// Safe and Multi return ErrMaxLengthTooSmall when the requested maximum
// cannot fit the mandatory hash suffix, and Multi returns ErrNoNames for an
// empty input slice. All other inputs succeed deterministically.
package slug
