package slug

// Validity predicates are explicit byte scans. The rules are simple range
// checks, so a regexp buys nothing here. Length limits count bytes, which is
// identical to characters for any string that passes the character checks.

func isLowerAlpha(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLowerAlphanum(b byte) bool {
	return isLowerAlpha(b) || isDigit(b)
}

func isAlphanum(b byte) bool {
	return isLowerAlphanum(b) || (b >= 'A' && b <= 'Z')
}

// IsValidObjectName reports whether s satisfies the strictest DNS label
// rules, meeting both RFC 1035 and RFC 1123: 1-63 characters, starts with a
// lowercase letter, ends with a lowercase letter or digit, and contains only
// lowercase letters, digits, and hyphens.
func IsValidObjectName(s string) bool {
	if len(s) < 1 || len(s) > 63 {
		return false
	}
	if !isLowerAlpha(s[0]) || !isLowerAlphanum(s[len(s)-1]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLowerAlphanum(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

// IsValidLabel reports whether s is a valid label value: empty, or at most
// 63 characters, starting and ending with an alphanumeric character, and
// containing only letters, digits, '.', '-', and '_' (case-insensitive).
func IsValidLabel(s string) bool {
	if s == "" {
		return true
	}
	if len(s) > 63 {
		return false
	}
	if !isAlphanum(s[0]) || !isAlphanum(s[len(s)-1]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !isAlphanum(b) && b != '.' && b != '-' && b != '_' {
			return false
		}
	}
	return true
}

// IsValidDefault is the predicate Safe uses when no WithValidator option is
// given. It is the same as IsValidObjectName, which also implies a valid
// label value.
func IsValidDefault(s string) bool {
	return IsValidObjectName(s)
}
