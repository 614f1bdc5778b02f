package callhelpers

import "slices"

// Plural categories recognized in a pluralization hash.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

var (
	// AllowedPluralizationKeys lists every category a pluralization hash may use.
	AllowedPluralizationKeys = []string{PluralZero, PluralOne, PluralFew, PluralMany, PluralOther}

	// RequiredPluralizationKeys is the minimum set consumers usually expect.
	// Classification here does not enforce it.
	RequiredPluralizationKeys = []string{PluralOne, PluralOther}
)

// IsObject reports whether v is a usable mapping. The unsupported-expression
// marker and primitives are not.
func IsObject(v Value) bool {
	return v.IsMap()
}

// IsPluralizationHash reports whether v is a non-empty mapping whose keys
// are all plural categories.
func IsPluralizationHash(v Value) bool {
	if !IsObject(v) {
		return false
	}
	keys := v.Map().Keys()
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !slices.Contains(AllowedPluralizationKeys, k) {
			return false
		}
	}
	return true
}

// HasRequiredPluralizationKeys reports whether v is a pluralization hash
// that defines every category in RequiredPluralizationKeys.
func HasRequiredPluralizationKeys(v Value) bool {
	if !IsPluralizationHash(v) {
		return false
	}
	m := v.Map()
	for _, k := range RequiredPluralizationKeys {
		if !m.Has(k) {
			return false
		}
	}
	return true
}

// ValidDefault reports whether v can serve as a default value: a string,
// a mapping, or absent when allowBlank is set.
func ValidDefault(v Value, allowBlank bool) bool {
	return (allowBlank && v.IsAbsent()) || v.IsString() || IsObject(v)
}
