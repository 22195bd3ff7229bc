package uk

import (
	"regexp"
	"strings"
)

var (
	digitsRe = regexp.MustCompile(`([0-9]+)`)
	spacesRe = regexp.MustCompile(` +`)
)

// part is an optional component value.
type part struct {
	value string
	ok    bool
}

func present(s string) part { return part{value: s, ok: true} }

// empty reports whether the part is absent or the empty string.
func (p part) empty() bool { return p.value == "" }

func (p part) get() (string, bool) { return p.value, p.ok }

// splitSides splits s on every run of spaces. The first token is the left side
// and the remaining tokens, joined without separator, are the right side.
// Empty and all-space input produce neither side.
func splitSides(s string) (left, right part) {
	if strings.Trim(s, " ") == "" {
		return part{}, part{}
	}

	tokens := spacesRe.Split(s, -1)
	left = present(tokens[0])
	if len(tokens) > 1 {
		right = present(strings.Join(tokens[1:], ""))
	}
	return left, right
}

func spaceBeforeDigits(s string) string {
	return digitsRe.ReplaceAllString(s, " ${1}")
}

func spaceAfterDigits(s string) string {
	return digitsRe.ReplaceAllString(s, "${1} ")
}

// splitOutward separates the area letters from the district that starts at
// the first digit run. Outward codes without digits are all area.
func splitOutward(outward part) (area, district part) {
	if outward.empty() {
		return part{}, part{}
	}
	return splitSides(spaceBeforeDigits(outward.value))
}

// splitInward separates the sector digit run from the unit letters.
// An inward code that does not start with a digit yields an empty sector and
// the whole inward code as unit, so that the sector fails validation.
func splitInward(inward part) (sector, unit part) {
	if inward.empty() {
		return part{}, part{}
	}
	if isDigit(inward.value[0]) {
		return splitSides(spaceAfterDigits(inward.value))
	}
	return splitSides(" " + inward.value)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
