package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// CleanCourse collapses inner whitespace and cuts at the carriage
// returns some upstream pages embed inside table cells.
func CleanCourse(text string) string {
	if i := strings.IndexByte(text, '\r'); i >= 0 {
		text = text[:i]
	}
	text = strings.Trim(text, " \n\t")
	return whitespaceRegex.ReplaceAllString(text, " ")
}

// abbreviations shorter than this only match exactly: substring and
// fuzzy checks on a two-letter matcher turn arbitrary text containing
// that bigram into a false positive
const fuzzyMinRunes = 4

// MatchName reports whether the normalized name matches one of the
// given matchers, tolerating small upstream typos.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		m = NormalizeName(m)
		if name == m {
			return true
		}
		if utf8.RuneCountInString(m) < fuzzyMinRunes {
			continue
		}
		if strings.Contains(name, m) {
			return true
		}
		if matchr.JaroWinkler(name, m, false) >= 0.92 {
			return true
		}
	}
	return false
}
