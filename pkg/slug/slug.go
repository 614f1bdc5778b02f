package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*options)

type options struct {
	separator string
	maxLength int
	keepCase  bool
	lang      *language.Tag
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(o *options) { o.separator = s }
}

// MaxLength caps the slug at n characters. Zero means no limit.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// Lowercase controls case folding. Enabled by default.
func Lowercase(enabled bool) Option {
	return func(o *options) { o.keepCase = !enabled }
}

// Language enables transliteration rules for the tag's base language, so
// German "ü" becomes "ue" instead of "u".
func Language(tag language.Tag) Option {
	return func(o *options) { o.lang = &tag }
}

// NoLanguage turns language rules off again; only generic folding applies.
func NoLanguage() Option {
	return func(o *options) { o.lang = nil }
}

// Make folds s to ASCII letters and digits. Any other run of characters
// becomes a single separator; leading and trailing separators are dropped.
func Make(s string, opts ...Option) string {
	o := options{separator: "-"}
	for _, opt := range opts {
		opt(&o)
	}

	s = fold(s, o.lang)
	sepLen := utf8.RuneCountInString(o.separator)

	var b strings.Builder
	b.Grow(len(s))

	n := 0
	pending := false
	for _, r := range s {
		if !o.keepCase {
			r = unicode.ToLower(r)
		}
		if !isAlnum(r) {
			pending = n > 0
			continue
		}
		if pending {
			if o.maxLength > 0 && n+sepLen >= o.maxLength {
				break
			}
			b.WriteString(o.separator)
			n += sepLen
			pending = false
		}
		if o.maxLength > 0 && n >= o.maxLength {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// ligatures covers letters without a canonical decomposition.
var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss", "ẞ", "SS",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

var rules = map[string]*strings.Replacer{
	"de": strings.NewReplacer("ä", "ae", "Ä", "Ae", "ö", "oe", "Ö", "Oe", "ü", "ue", "Ü", "Ue"),
	"da": strings.NewReplacer("å", "aa", "Å", "Aa"),
	"nb": strings.NewReplacer("å", "aa", "Å", "Aa"),
	"sv": strings.NewReplacer("å", "aa", "Å", "Aa"),
}

func fold(s string, tag *language.Tag) string {
	if tag != nil {
		base, _ := tag.Base()
		if r, ok := rules[base.String()]; ok {
			s = r.Replace(s)
		}
	}
	s = ligatures.Replace(s)

	// transform.Chain is stateful, so each call gets its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
