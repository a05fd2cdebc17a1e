// Package extract pulls a city name out of free-text weather questions.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityPhrase matches "in <words>" or "at <words>" on lower-cased input. The capture is the
// maximal run of letters and spaces after the preposition; digits and punctuation end it.
var cityPhrase = regexp.MustCompile(`\b(?:in|at)\s+([a-z][a-z ]*)`)

// City returns the display-cased city named in text, or false when text has no
// "in <city>" / "at <city>" phrase. Only the first phrase is used, and words following
// the city are kept ("in karachi today" yields "Karachi Today").
func City(text string) (string, bool) {
	m := cityPhrase.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return "", false
	}
	words := strings.Fields(m[1])
	if len(words) == 0 {
		return "", false
	}
	// Casers carry state and are not shared between goroutines.
	return cases.Title(language.English).String(strings.Join(words, " ")), true
}
