// Package slug turns free text into identifier-safe strings.
//
// It is used to derive translation keys from default text, so output must
// be stable: the same input and options always give the same slug.
//
// # Features
//
//   - Diacritic folding through Unicode decomposition (é → e, ñ → n)
//   - Ligature expansion for letters without a decomposition (ß → ss, æ → ae)
//   - Optional language-aware rules (German ü → ue) via Language
//   - Configurable separators (default: hyphen)
//   - Optional lowercase conversion (enabled by default)
//   - Maximum length counted in characters, never ending on a separator
//
// # Usage
//
//	import "github.com/dmitrymomot/i18nliner/pkg/slug"
//
//	slug.Make("Hello World!")
//	// "hello-world"
//
//	slug.Make("Grüße aus Köln", slug.Separator("_"))
//	// "grusse_aus_koln"
//
//	slug.Make("Grüße aus Köln", slug.Language(language.German))
//	// "gruesse-aus-koeln"
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
package slug
