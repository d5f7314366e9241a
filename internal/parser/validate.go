package parser

import (
	"regexp"
	"strings"
	"time"
)

// DateTimeLayout is the input format of appointment dates and times:
// dt/yyyy-MM-dd joined with t/HHmm.
const DateTimeLayout = "2006-01-02 1504"

var (
	// nricPattern is the strict patient identifier: a prefix letter from
	// S, T, F, G or M, seven digits and a checksum letter.
	nricPattern = regexp.MustCompile(`^(?i)[STFGM]\d{7}[A-Z]$`)
	// nricShape accepts any leading letter. It separates identifiers from
	// names where no prefix says which one the user meant.
	nricShape = regexp.MustCompile(`^(?i)[A-Z]\d{7}[A-Z]$`)
	listSep   = regexp.MustCompile(`,\s*`)
)

const invalidNRICMessage = "Invalid IC format. Please use a valid IC e.g. S1234567D"

// ValidNRIC reports whether s is a well-formed patient identifier.
func ValidNRIC(s string) bool {
	return nricPattern.MatchString(strings.TrimSpace(s))
}

// LooksLikeNRIC reports whether s has the letter-seven-digits-letter shape of
// an identifier, whatever its leading letter.
func LooksLikeNRIC(s string) bool {
	return nricShape.MatchString(s)
}

// validateNRIC returns a MalformedValue error naming the expected pattern
// when s is not a valid identifier.
func validateNRIC(s string) error {
	if !ValidNRIC(s) {
		return malformed(invalidNRICMessage)
	}
	return nil
}

// ParseDateTime joins a date and a time token with a single space and parses
// them against DateTimeLayout in the local time zone.
func ParseDateTime(date, clock string) (time.Time, error) {
	combined := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	t, err := time.ParseInLocation(DateTimeLayout, combined, time.Local)
	if err != nil {
		return time.Time{}, malformed("Invalid date/time format. Please use: dt/yyyy-MM-dd and t/HHmm")
	}
	return t, nil
}

// notBefore rejects t when it lies strictly before now.
func notBefore(t, now time.Time) error {
	if t.Before(now) {
		return semantic("The appointment date/time cannot be before the current date/time")
	}
	return nil
}

// SplitList splits a comma separated value into trimmed entries. Order and
// duplicates are kept, and so are empty entries.
func SplitList(value string) []string {
	parts := listSep.Split(value, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
