package utils

import "strings"

// SplitQualified splits a dotted name at its last dot.
//
// Examples:
//   - "data" -> ("", "data")
//   - "public.data" -> ("public", "data")
//   - "db.public.data" -> ("db.public", "data")
//   - "" -> ("", "")
func SplitQualified(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

// IsIdentifier reports whether s is a plain SQL identifier: a letter or
// underscore followed by letters, digits, underscores or dollar signs.
//
// Examples:
//   - "users" -> true
//   - "_tmp$1" -> true
//   - "1st" -> false
//   - "first name" -> false
//   - "o'brien" -> false
//   - "" -> false
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '$' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

// IsQualifiedIdentifier reports whether every dot separated part of s is a
// plain identifier.
func IsQualifiedIdentifier(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}
