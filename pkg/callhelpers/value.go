package callhelpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the dynamic shape of a Value.
type Kind uint8

const (
	// KindAbsent marks an omitted argument or a missing mapping field.
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindMap
	KindList
	// KindUnsupported marks an expression that cannot be statically analyzed.
	// It is never treated as a usable mapping.
	KindUnsupported
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	case KindList:
		return "list"
	case KindUnsupported:
		return "unsupported"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single translate-call argument or mapping field.
// The zero Value is absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	m    *Map
	list []Value
}

// Absent returns the absent value.
func Absent() Value { return Value{} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a number.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Int wraps an integer as a number.
func Int(n int) Value { return Number(float64(n)) }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// MapValue wraps a mapping. A nil map is replaced with an empty one.
func MapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// List wraps an ordered sequence of values.
func List(items ...Value) Value { return Value{kind: KindList, list: items} }

// Unsupported returns the unsupported-expression marker.
func Unsupported() Value { return Value{kind: KindUnsupported} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsMap() bool { return v.kind == KindMap }
func (v Value) IsList() bool { return v.kind == KindList }
func (v Value) IsUnsupported() bool { return v.kind == KindUnsupported }
func (v Value) Str() string { return v.str }
func (v Value) Num() float64 { return v.num }
func (v Value) Items() []Value { return v.list }

// Map returns the wrapped mapping or nil when v is not a map.
func (v Value) Map() *Map {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}

// isObjectTyped reports whether v is a structured value of any kind,
// including the unsupported marker.
func (v Value) isObjectTyped() bool {
	return v.kind == KindMap || v.kind == KindList || v.kind == KindUnsupported
}

// Truthy follows loose truthiness: absent, empty strings, zero, NaN and false
// are falsy, every structured value is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindAbsent:
		return false
	case KindString:
		return v.str != ""
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindBool:
		return v.b
	default:
		return true
	}
}

// Text stringifies v the way string concatenation would.
func (v Value) Text() string {
	switch v.kind {
	case KindAbsent:
		return "undefined"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindMap:
		return "[object Object]"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			if !item.IsAbsent() {
				parts[i] = item.Text()
			}
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Any converts v back to plain Go values: string, float64, bool,
// map[string]any, []any or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindMap:
		return v.m.ToAny()
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Any()
		}
		return out
	default:
		return nil
	}
}

func (v Value) GoString() string {
	return fmt.Sprintf("callhelpers.Value{%s: %v}", v.kind, v.Any())
}

// FromAny converts a plain Go value into a Value. Unknown types become
// Unsupported.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Absent()
	case Value:
		return t
	case *Map:
		return MapValue(t)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	case map[string]any:
		return MapValue(MapFromAny(t))
	case map[string]string:
		m := NewMap()
		for _, k := range sortedKeys(t) {
			m.Set(k, String(t[k]))
		}
		return MapValue(m)
	case map[any]any:
		conv := make(map[string]any, len(t))
		for k, val := range t {
			if ks, ok := k.(string); ok {
				conv[ks] = val
			}
		}
		return MapValue(MapFromAny(conv))
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return List(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = String(item)
		}
		return List(items...)
	default:
		return Unsupported()
	}
}

// FromArgs converts translate-call arguments into Values.
func FromArgs(args ...any) []Value {
	out := make([]Value, len(args))
	for i, a := range args {
		out[i] = FromAny(a)
	}
	return out
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
