package i18n

import "errors"

var (
	ErrNilAdapter            = errors.New("translation adapter is nil")
	ErrInvalidCatalog        = errors.New("invalid translation catalog")
	ErrLanguageNotSupported  = errors.New("language not supported")
	ErrTranslationMissing    = errors.New("translation missing")
	ErrTranslationNotString  = errors.New("translation is not a string")
	ErrMissingPluralCategory = errors.New("pluralization category missing")
	ErrFailedToMarshalJSON   = errors.New("failed to marshal translations to JSON")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrUnsupportedFileType  = errors.New("unsupported translation file type")

	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")
	ErrEmptyFile         = errors.New("translation file is empty")
	ErrFailedToReadDir   = errors.New("failed to read translation directory")
	ErrNoTranslations    = errors.New("no translation files found")
)
