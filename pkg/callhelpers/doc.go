// Package callhelpers normalizes the overloaded argument shapes of a
// translate call and post-processes translated strings.
//
// A translate call may pass a key, a default value and options in several
// combinations:
//
//	t("greetings.hello")
//	t("greetings.hello", "Hello")
//	t("greetings.hello", "Hello %{name}", {name: "Bob"})
//	t("greetings.hello", {one: "1 item", other: "%{count} items"}, {count: 2})
//	t("Hello")
//	t("Hello %{name}", {name: "Bob"})
//	t({one: "1 item", other: "%{count} items"}, {count: 2})
//
// Normalizer.InferArguments reduces every shape to exactly [key, options]
// with the default value moved into options.defaultValue. When no explicit
// key is given, KeyInferrer derives one from the default text in one of
// three formats: raw, underscored, or underscored_crc32.
//
// # Values
//
// Arguments are modeled as Value, a tagged union of absent, string, number,
// bool, ordered map, list and the Unsupported marker used for expressions
// that cannot be analyzed statically. FromAny converts plain Go values.
//
// # Wrappers
//
// ApplyWrappers injects markup into delimited spans:
//
//	callhelpers.ApplyWrappers("a *b* c", callhelpers.Templates("<b>$1</b>"))
//	// "a <b>b</b> c"
//
// # Concurrency
//
// Normalizer and KeyInferrer hold an immutable Config and are safe for
// concurrent use.
package callhelpers
