package callhelpers

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nliner/pkg/cache"
)

// Wrapper rewrites a delimited span. match is the span including both
// delimiters, inner is the text between them.
type Wrapper interface {
	Wrap(match, inner string) string
}

// WrapperFunc adapts a function to Wrapper.
type WrapperFunc func(match, inner string) string

func (f WrapperFunc) Wrap(match, inner string) string { return f(match, inner) }

// Template is a replacement string: "$1" expands to the inner text,
// "$&" to the whole match and "$$" to a literal dollar sign. Other "$"
// sequences are kept as is.
type Template string

func (t Template) Wrap(match, inner string) string {
	s := string(t)
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(inner))
	for i := 0; i < len(s); i++ {
		if s[i] != '$' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case '1':
			b.WriteString(inner)
			i++
		case '&':
			b.WriteString(match)
			i++
		case '$':
			b.WriteByte('$')
			i++
		default:
			b.WriteByte('$')
		}
	}
	return b.String()
}

// Wrappers is either an ordered list paired with "*" delimiters of
// increasing length, or a mapping from explicit delimiters.
type Wrappers struct {
	positional []Wrapper
	named      map[string]Wrapper
}

// Positional builds an ordered wrapper list. The first wrapper handles
// *text*, the second **text**, and so on.
func Positional(ws ...Wrapper) Wrappers {
	return Wrappers{positional: ws}
}

// Templates builds an ordered list of Template wrappers.
func Templates(ts ...string) Wrappers {
	ws := make([]Wrapper, len(ts))
	for i, t := range ts {
		ws[i] = Template(t)
	}
	return Positional(ws...)
}

// Named builds wrappers keyed by delimiter.
func Named(m map[string]Wrapper) Wrappers {
	return Wrappers{named: m}
}

// WrappersFromValue reads a wrapper definition from a call option: a string,
// a list of strings, or a mapping of delimiter to string.
func WrappersFromValue(v Value) (Wrappers, error) {
	switch v.Kind() {
	case KindString:
		return Templates(v.Str()), nil
	case KindList:
		ts := make([]string, 0, len(v.Items()))
		for i, item := range v.Items() {
			if !item.IsString() {
				return Wrappers{}, fmt.Errorf("%w: item %d is %s", ErrInvalidWrapper, i, item.Kind())
			}
			ts = append(ts, item.Str())
		}
		return Templates(ts...), nil
	case KindMap:
		m := v.Map()
		named := make(map[string]Wrapper, m.Len())
		for _, k := range m.Keys() {
			item := m.Get(k)
			if !item.IsString() {
				return Wrappers{}, fmt.Errorf("%w: delimiter %q maps to %s", ErrInvalidWrapper, k, item.Kind())
			}
			named[k] = Template(item.Str())
		}
		return Named(named), nil
	default:
		return Wrappers{}, fmt.Errorf("%w: got %s", ErrInvalidWrapper, v.Kind())
	}
}

// ApplyWrappers rewrites the first span of each delimiter in text.
// Positional wrappers run from the longest "*" run down to "*".
// Named wrappers run by descending delimiter length so a delimiter is
// never matched inside a longer one; ties are ordered lexically.
func ApplyWrappers(text string, w Wrappers) string {
	return applyWrappers(text, w, ApplyWrapper)
}

// ApplyWrappersAll is ApplyWrappers with every non-overlapping span of
// each delimiter rewritten, left to right.
func ApplyWrappersAll(text string, w Wrappers) string {
	return applyWrappers(text, w, ApplyWrapperAll)
}

func applyWrappers(text string, w Wrappers, apply func(string, string, Wrapper) string) string {
	if w.named != nil {
		delims := make([]string, 0, len(w.named))
		for d := range w.named {
			delims = append(delims, d)
		}
		slices.SortFunc(delims, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		for _, d := range delims {
			text = apply(text, d, w.named[d])
		}
		return text
	}
	for i := len(w.positional); i > 0; i-- {
		text = apply(text, strings.Repeat("*", i), w.positional[i-1])
	}
	return text
}

// ApplyWrapper rewrites the first span enclosed by delimiter. The span ends
// at the nearest closing delimiter. Delimiters are matched literally.
func ApplyWrapper(text, delimiter string, w Wrapper) string {
	if delimiter == "" || w == nil {
		return text
	}
	loc := delimiterPattern(delimiter).FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	match, inner := text[loc[0]:loc[1]], text[loc[2]:loc[3]]
	return text[:loc[0]] + w.Wrap(match, inner) + text[loc[1]:]
}

// ApplyWrapperAll rewrites every non-overlapping span enclosed by
// delimiter, scanning left to right.
func ApplyWrapperAll(text, delimiter string, w Wrapper) string {
	if delimiter == "" || w == nil {
		return text
	}
	locs := delimiterPattern(delimiter).FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString(w.Wrap(text[loc[0]:loc[1]], text[loc[2]:loc[3]]))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

var patternCache = cache.New[string, *regexp.Regexp](256)

func delimiterPattern(delimiter string) *regexp.Regexp {
	return patternCache.GetOrCompute(delimiter, compileDelimiter)
}

func compileDelimiter(delimiter string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(delimiter)
	return regexp.MustCompile(escaped + "(.*?)" + escaped)
}
