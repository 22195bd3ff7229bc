package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper converts s to upper case using full Unicode case mapping,
// so characters such as 'ß' expand to "SS".
func ToUpper(s string) string {
	// A Caser keeps state between calls and must not be shared across goroutines.
	return cases.Upper(language.Und).String(s)
}

// TrimLineEnding strips a trailing "\n", "\r\n" or "\r" without touching other
// whitespace.
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
