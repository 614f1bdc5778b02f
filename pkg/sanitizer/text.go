package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// EscapeHTML escapes <, >, &, ' and " so the text can be embedded in markup.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripHTML removes tags and unescapes entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// RemoveControlChars drops control characters except \n, \r and \t.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeWhitespace collapses whitespace runs to one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// SingleLine joins lines with spaces and normalizes whitespace.
func SingleLine(s string) string {
	return NormalizeWhitespace(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s))
}

// MaxLength returns a transform truncating to n runes, appending "…" when
// something was cut. Non-positive n disables truncation.
func MaxLength(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return s
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n]) + "…"
	}
}
