package discovery

import (
	"strings"
	"unicode/utf8"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLocationLength bounds a search location, counted in characters after trimming.
const MaxLocationLength = 100

// Canonicalize trims and lowercases s without validating it. Stored locations
// are compared in this form.
func Canonicalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Normalize turns raw user input into the canonical location key used for
// catalog lookup, history and saved-place matching. The raw string is for
// display only.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errs.Validation("Location cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxLocationLength {
		return "", errs.Validation("Location is too long")
	}
	return Canonicalize(trimmed), nil
}

// DisplayLabel trims raw and upper-cases its first character only, so
// "new york" becomes "New york".
func DisplayLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(trimmed)
	return cases.Upper(language.Und).String(string(first)) + trimmed[size:]
}
