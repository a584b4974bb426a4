package plan

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindArray
	KindObject
	// KindSensitive marks a leaf whose contents were withheld because the
	// plan flagged it as sensitive.
	KindSensitive
)

// Value is one node of a resource attribute tree. Containers own their
// children; a Value is never mutated after construction.
type Value struct {
	kind   Kind
	str    string
	i      int64
	f      float64
	b      bool
	items  []Value
	fields map[string]Value
}

// ValueMap holds one side of a resource change. A nil map means the side is
// absent (for example the before side of a create).
type ValueMap map[string]Value

func NullVal() Value { return Value{kind: KindNull} }

func StringVal(s string) Value { return Value{kind: KindString, str: s} }

func IntVal(i int64) Value { return Value{kind: KindInt, i: i} }

func FloatVal(f float64) Value { return Value{kind: KindFloat, f: f} }

func BoolVal(b bool) Value { return Value{kind: KindBool, b: b} }

func SensitiveVal() Value { return Value{kind: KindSensitive} }

func ArrayVal(items []Value) Value { return Value{kind: KindArray, items: items} }

func ObjectVal(fields map[string]Value) Value { return Value{kind: KindObject, fields: fields} }

// maxExactInt is the largest float64 magnitude that still represents every
// integer exactly.
const maxExactInt = 1 << 53

// FromRaw converts a decoded JSON tree into a Value. Numbers that carry no
// fractional part become ints so that they render without a decimal point.
func FromRaw(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return NullVal()
	case bool:
		return BoolVal(v)
	case string:
		return StringVal(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return IntVal(i)
		}
		f, _ := v.Float64()
		return FloatVal(f)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < maxExactInt {
			return IntVal(int64(v))
		}
		return FloatVal(v)
	case []interface{}:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = FromRaw(item)
		}
		return ArrayVal(items)
	case map[string]interface{}:
		fields := make(map[string]Value, len(v))
		for key, field := range v {
			fields[key] = FromRaw(field)
		}
		return ObjectVal(fields)
	default:
		return StringVal(fmt.Sprint(v))
	}
}

// FromRawMap converts a decoded JSON object into a ValueMap. Non-object
// input yields nil.
func FromRawMap(raw interface{}) ValueMap {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(ValueMap, len(obj))
	for key, field := range obj {
		out[key] = FromRaw(field)
	}
	return out
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Fields returns the children of an object value, nil for any other kind.
func (v Value) Fields() map[string]Value { return v.fields }

// Items returns the elements of an array value, nil for any other kind.
func (v Value) Items() []Value { return v.items }

// Equal reports structural equality. Two sensitive leaves compare equal
// regardless of the values they replaced.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull, KindSensitive:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for key, field := range v.fields {
			other, ok := o.fields[key]
			if !ok || !field.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value as a single line of plain text: strings quoted,
// arrays bracketed, object keys sorted, sensitive leaves as the literal
// token "sensitive".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindSensitive:
		return "sensitive"
	case KindArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := make([]string, 0, len(v.fields))
		for key := range v.fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = strconv.Quote(key) + ": " + v.fields[key].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

// sensitiveToken is the machine-readable stand-in for withheld values,
// matching what terraform itself prints.
const sensitiveToken = "(sensitive value)"

// Interface returns the value as plain Go data suitable for marshaling.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindNull:
		return nil
	case KindString:
		return v.str
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindSensitive:
		return sensitiveToken
	case KindArray:
		items := make([]interface{}, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	case KindObject:
		fields := make(map[string]interface{}, len(v.fields))
		for key, field := range v.fields {
			fields[key] = field.Interface()
		}
		return fields
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
