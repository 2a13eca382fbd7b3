package analyze

import (
	"regexp"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	numericPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?$`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`), // YYYY-MM-DD
		regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`), // MM/DD/YYYY
		regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`), // MM-DD-YYYY
	}
)

// booleanTokens is the closed set of recognized boolean values. Membership
// is what matters, not parseability, so "t" or "on" do not qualify.
var booleanTokens = map[string]struct{}{
	"true":  {},
	"false": {},
	"1":     {},
	"0":     {},
	"yes":   {},
	"no":    {},
}

// IsBoolean checks whether the value is a member of the recognized
// boolean token set. Matching is case-insensitive.
func IsBoolean(s string) bool {
	_, ok := booleanTokens[strings.ToLower(s)]
	return ok
}

// IsInteger checks for an optionally signed run of decimal digits.
func IsInteger(s string) bool {
	return integerPattern.MatchString(s)
}

// IsNumeric checks for a decimal number: optional sign, digits, and an
// optional single decimal point with optional fraction digits.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// IsDate checks the value against the supported date layouts. Matching
// is purely syntactic: digit counts and separators must line up, but no
// calendar validation is done, so "2024-13-40" passes.
func IsDate(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}

	return false
}
