package callhelpers

import "errors"

var (
	// ErrInvalidDefault is returned when a key is requested for a default value
	// that is neither a string nor a mapping (nor an allowed blank).
	ErrInvalidDefault = errors.New("default value cannot be used to infer a key")

	// ErrEmptyKey is returned when key inference would produce an empty key.
	ErrEmptyKey = errors.New("inferred translation key is empty")

	// ErrInvalidArguments is returned for call shapes that cannot be normalized.
	ErrInvalidArguments = errors.New("invalid translate arguments")

	// ErrUnknownKeyFormat is returned by ParseKeyFormat for unrecognized names.
	ErrUnknownKeyFormat = errors.New("unknown inferred key format")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid call helpers config")

	// ErrInvalidWrapper is returned when a value cannot be used as a wrapper definition.
	ErrInvalidWrapper = errors.New("invalid wrapper")
)
