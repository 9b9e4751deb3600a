// Package slug derives URL-safe identifiers from team display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)
	disallowed    = regexp.MustCompile(`[^a-z0-9-]`)
	validPattern  = regexp.MustCompile(`^[a-z0-9-]*$`)
)

// Letters that survive NFD decomposition unchanged and need an explicit ASCII form.
var letterFolds = strings.NewReplacer(
	"ð", "d",
	"đ", "d",
	"þ", "th",
	"æ", "ae",
	"œ", "oe",
	"ö", "o",
	"ø", "o",
	"ß", "ss",
	"ł", "l",
)

// Generate lowercases name, folds accents and locale specific letters to ASCII,
// joins whitespace runs with a single hyphen and drops everything outside [a-z0-9-].
// Distinct names may produce the same slug; uniqueness is enforced by storage.
func Generate(name string) string {
	value := strings.ToLower(name)
	value = stripMarks(value)
	value = letterFolds.Replace(value)
	value = whitespaceRun.ReplaceAllString(value, "-")
	return disallowed.ReplaceAllString(value, "")
}

// Valid reports whether value only holds slug characters.
func Valid(value string) bool {
	return validPattern.MatchString(value)
}

func stripMarks(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return out
}
