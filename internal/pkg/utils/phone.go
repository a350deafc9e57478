package utils

import (
	"regexp"
	"strings"
)

var reNonDigit = regexp.MustCompile(`[^\d]`)

// NormalizeUSPhone reduces a free-form phone string to E.164 for US numbers:
// every non-digit is stripped, a missing country code is assumed to be 1, and
// the result is prefixed with '+'. Inputs that already carry the leading 1
// (with or without '+', spaces, dashes, parentheses) come out unchanged in
// meaning.
func NormalizeUSPhone(input string) string {
	digits := reNonDigit.ReplaceAllString(input, "")
	if !strings.HasPrefix(digits, "1") {
		digits = "1" + digits
	}
	return "+" + digits
}
