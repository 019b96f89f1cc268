package escape

import "errors"

// Sentinel errors for escape operations.
var (
	// ErrInvalidUTF8 is returned when the bytes produced by Unescape do not
	// form a valid UTF-8 string.
	ErrInvalidUTF8 = errors.New("escape: unescaped result is not valid utf-8")
)
