package callhelpers

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
)

// DefaultValueKey is the options field that carries the default value.
const DefaultValueKey = "defaultValue"

// keyPattern matches explicit dotted keys such as "foo.bar_baz".
var keyPattern = regexp.MustCompile(`^(\w+\.)+\w+$`)

// Meta receives details about a normalization.
type Meta struct {
	// InferredKey is true when the key was synthesized from the default.
	InferredKey bool
}

// Normalizer recovers the canonical [key, options] form of a translate call.
// It is safe for concurrent use.
type Normalizer struct {
	keys   *KeyInferrer
	logger *slog.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	o := newOptions(opts)
	return &Normalizer{
		keys:   &KeyInferrer{cfg: o.cfg, pluralizer: o.pluralizer, logger: o.logger},
		logger: o.logger,
	}
}

// KeyInferrer returns the inferrer used for missing keys.
func (n *Normalizer) KeyInferrer() *KeyInferrer { return n.keys }

// NormalizeKey is applied to explicit keys. Keys are used as given.
func NormalizeKey(key string) string { return key }

// IsKeyProvided decides whether the first argument is a key. Accepted shapes:
//
//	key [, options]
//	key, default_string [, options]
//	key, default_object, options
//	default_string [, options]
//	default_object, options
func IsKeyProvided(keyOrDefault, defaultOrOptions, maybeOptions Value) bool {
	if keyOrDefault.isObjectTyped() {
		return false
	}
	if defaultOrOptions.IsString() {
		return true
	}
	if maybeOptions.Truthy() {
		return true
	}
	if keyOrDefault.IsString() && keyPattern.MatchString(keyOrDefault.Str()) {
		return true
	}
	return false
}

// InferArguments normalizes 1–3 translate arguments into exactly
// [key, options]. When a default value was supplied it ends up in
// options.defaultValue. The input slice and any options map are not modified.
func (n *Normalizer) InferArguments(args []Value, meta *Meta) ([]Value, error) {
	args = trimTrailingAbsent(args)
	if len(args) == 0 || len(args) > 3 {
		return nil, fmt.Errorf("%w: expected 1 to 3 arguments, got %d", ErrInvalidArguments, len(args))
	}

	if len(args) == 2 && args[0].IsString() && args[1].IsMap() && args[1].Map().Get(DefaultValueKey).Truthy() {
		if meta != nil {
			meta.InferredKey = false
		}
		return slices.Clone(args), nil
	}

	out := slices.Clone(args)
	hasKey := IsKeyProvided(at(out, 0), at(out, 1), at(out, 2))
	if meta != nil {
		meta.InferredKey = !hasKey
	}

	if hasKey {
		if out[0].IsString() {
			out[0] = String(NormalizeKey(out[0].Str()))
		}
	} else {
		key, err := n.keys.InferKey(out[0], nil)
		if err != nil {
			return nil, err
		}
		n.logger.Debug("translation key inferred", "key", key, "default_kind", out[0].Kind().String())
		out = append([]Value{String(key)}, out...)
	}

	defaultOrOptions := at(out, 1)
	if at(out, 2).Truthy() || defaultOrOptions.IsString() || IsPluralizationHash(defaultOrOptions) {
		options := at(out, 2)
		if !options.Truthy() {
			options = MapValue(NewMap())
		}
		if IsObject(options) {
			m := options.Map().Clone()
			if !defaultOrOptions.IsAbsent() {
				m.Set(DefaultValueKey, defaultOrOptions)
			}
			out = append(out[:1], MapValue(m))
		}
	}

	if len(out) == 1 {
		out = append(out, MapValue(NewMap()))
	}

	if len(out) != 2 || !out[0].IsString() || !out[1].IsMap() {
		return nil, fmt.Errorf("%w: cannot reduce %d arguments to key and options", ErrInvalidArguments, len(args))
	}
	return out, nil
}

// Infer is InferArguments for plain Go values, returning the key and options.
func (n *Normalizer) Infer(args ...any) (string, *Map, error) {
	out, err := n.InferArguments(FromArgs(args...), nil)
	if err != nil {
		return "", nil, err
	}
	return out[0].Str(), out[1].Map(), nil
}

func at(args []Value, i int) Value {
	if i < len(args) {
		return args[i]
	}
	return Absent()
}

func trimTrailingAbsent(args []Value) []Value {
	for len(args) > 1 && args[len(args)-1].IsAbsent() {
		args = args[:len(args)-1]
	}
	return args
}
