// Package sanitizer holds small string transforms used around translated
// text: HTML escaping of interpolated values, and compacting user text for
// log attributes.
//
//	preview := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.MaxLength(60))
//	log.Debug("key resolved", "text", preview(text))
//
// Apply and Compose chain transforms of any type.
package sanitizer
