package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no locale is configured or detected.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size that is parsed.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage negotiates an RFC 7231 Accept-Language header against
// supportedLangs and returns the matching entry of supportedLangs as given.
// Regional variants match their base language (fr-CA → fr). It returns
// defaultLang when the header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	if lang, ok := matchLanguage(desired, supportedLangs); ok {
		return lang
	}
	return defaultLang
}

// MatchLanguage returns the entry of supportedLangs that best serves lang.
func MatchLanguage(lang string, supportedLangs []string) (string, bool) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	return matchLanguage([]language.Tag{tag}, supportedLangs)
}

func matchLanguage(desired []language.Tag, supportedLangs []string) (string, bool) {
	if len(supportedLangs) == 0 {
		return "", false
	}
	supported := make([]language.Tag, len(supportedLangs))
	for i, s := range supportedLangs {
		supported[i] = language.Make(s)
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return "", false
	}
	return supportedLangs[idx], true
}
