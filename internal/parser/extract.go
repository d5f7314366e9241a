package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix is a field tag such as "ic/" that marks the start of a value in a
// command line.
type Prefix string

// Recognized field prefixes.
const (
	PrefixName        Prefix = "n/"
	PrefixNRIC        Prefix = "ic/"
	PrefixBirthdate   Prefix = "dob/"
	PrefixGender      Prefix = "g/"
	PrefixPhone       Prefix = "p/"
	PrefixAddress     Prefix = "a/"
	PrefixDate        Prefix = "dt/"
	PrefixTime        Prefix = "t/"
	PrefixDescription Prefix = "dsc/"
	PrefixHistory     Prefix = "h/"
	PrefixOldHistory  Prefix = "old/"
	PrefixNewHistory  Prefix = "new/"
	PrefixSymptoms    Prefix = "s/"
	PrefixMedicines   Prefix = "m/"
	PrefixNotes       Prefix = "nt/"
)

// fieldPrefixes is the closed set of prefixes that may end a field value.
// Order matters: when two prefixes start at the same position the earlier
// entry wins.
var fieldPrefixes = [...]Prefix{
	PrefixName, PrefixNRIC, PrefixBirthdate, PrefixGender, PrefixPhone,
	PrefixAddress, PrefixDate, PrefixTime, PrefixDescription, PrefixHistory,
	PrefixOldHistory, PrefixNewHistory, PrefixSymptoms, PrefixMedicines, PrefixNotes,
}

// Prefixes returns a copy of the recognized prefix set in declaration order.
func Prefixes() []Prefix {
	out := make([]Prefix, len(fieldPrefixes))
	copy(out, fieldPrefixes[:])
	return out
}

// IsPrefix reports whether p belongs to the recognized prefix set.
func IsPrefix(p Prefix) bool {
	for _, known := range fieldPrefixes {
		if strings.EqualFold(string(known), string(p)) {
			return true
		}
	}
	return false
}

// Extract returns the trimmed value following prefix in input.
//
// The prefix only matches at the start of input or right after whitespace,
// so "grand/" never yields an "a/" field. The value runs until the nearest
// boundary-valid occurrence of any other recognized prefix, or the end of
// input. A missing prefix or an all-whitespace value reports false.
func Extract(input string, prefix Prefix) (string, bool) {
	start := indexPrefix(input, string(prefix), 0)
	if start < 0 {
		return "", false
	}

	valueStart := start + len(prefix)
	end := nextBoundary(input, prefix, valueStart)

	value := strings.TrimSpace(input[valueStart:end])
	if value == "" {
		return "", false
	}
	return value, true
}

// nextBoundary finds where the value that starts at from ends. Every other
// prefix is searched and the smallest position wins; strict comparison keeps
// the first-declared prefix on ties.
func nextBoundary(input string, current Prefix, from int) int {
	end := len(input)
	for _, p := range fieldPrefixes {
		if strings.EqualFold(string(p), string(current)) {
			continue
		}
		if i := indexPrefix(input, string(p), from); i >= 0 && i < end {
			end = i
		}
	}
	return end
}

// indexPrefix returns the first byte offset at or after from where prefix
// occurs (ASCII case-insensitive) at a token boundary, or -1.
func indexPrefix(input, prefix string, from int) int {
	if prefix == "" {
		return -1
	}
	for i := from; i+len(prefix) <= len(input); i++ {
		if hasFoldAt(input, i, prefix) && atBoundary(input, i) {
			return i
		}
	}
	return -1
}

// hasFoldAt compares input[i:] against prefix with ASCII case folding. Byte
// comparison keeps offsets stable for non-ASCII input.
func hasFoldAt(input string, i int, prefix string) bool {
	for j := 0; j < len(prefix); j++ {
		if lowerASCII(input[i+j]) != lowerASCII(prefix[j]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// atBoundary reports whether position i is the start of input or directly
// follows a field separator rune.
func atBoundary(input string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(input[:i])
	return isFieldSpace(r)
}

// isFieldSpace reports whether r separates fields. No-break spaces are part
// of a value, so "Tom\u00a0ic/..." keeps the tag inside the name.
func isFieldSpace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
