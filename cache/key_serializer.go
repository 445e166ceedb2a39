package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// maxKeyLen bounds the length of generated keys. Keys that would exceed it
// are collapsed to an xxhash digest so argument payloads of arbitrary size
// cannot produce arbitrarily large store keys.
const maxKeyLen = 256

// KeySerializer builds a cache key from a member name plus the call's
// arguments. Implementations must produce stable keys across calls: two
// argument sets that compare equal must map to the same key, and named
// arguments must be distinguishable from positional ones.
type KeySerializer interface {
	SerializeKey(member string, args ...any) string
	SerializeKeyNamed(member string, args []any, named map[string]any) string
}

// defaultKeySerializer implements KeySerializer using reflection-based
// serialization. It handles function pointers using %p formatting, recursive
// slices, and falls back to JSON for complex types while ensuring
// deterministic key generation across runs.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates a new instance of the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from a member name and positional args.
// A call with no args yields the bare member name.
func (s *defaultKeySerializer) SerializeKey(member string, args ...any) string {
	return s.SerializeKeyNamed(member, args, nil)
}

// SerializeKeyNamed builds a cache key from a member name, positional args,
// and named args.
//
// Canonicalization rule for named arguments: they are sorted bytewise by
// name and appended after all positional segments, each rendered as
// `n:"name"=value`. The tag and the quoted name keep a named argument
// distinct from any positional rendering, and the sort makes the key
// independent of the order the caller supplied them in. String values are
// always rendered quoted (see serializeValue), so neither an argument nor a
// name can smuggle a separator into the key and collide with a different
// argument list.
func (s *defaultKeySerializer) SerializeKeyNamed(member string, args []any, named map[string]any) string {
	if len(args) == 0 && len(named) == 0 {
		return member
	}

	parts := make([]string, 0, 1+len(args)+len(named))
	parts = append(parts, member)

	for _, arg := range args {
		parts = append(parts, s.serializeValue(arg))
	}

	if len(named) > 0 {
		names := make([]string, 0, len(named))
		for name := range named {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("n:%q=%s", name, s.serializeValue(named[name])))
		}
	}

	key := strings.Join(parts, KeySeparator)
	if len(key) > maxKeyLen {
		return s.digestKey(member, key)
	}
	return key
}

// digestKey collapses an oversized key to "member::xx64:<digest>". The
// member prefix is preserved so prefix-scoped clearing keeps working.
func (s *defaultKeySerializer) digestKey(member, key string) string {
	return fmt.Sprintf("%s%sxx64:%016x", member, KeySeparator, xxhash.Sum64String(key))
}

// serializeValue handles individual argument serialization based on type.
func (s *defaultKeySerializer) serializeValue(v any) string {
	if v == nil {
		return "nil"
	}

	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf(v)

	switch rt.Kind() {
	case reflect.Func:
		// %p keeps function arguments stable within a process lifetime
		return fmt.Sprintf("func:%p", v)

	case reflect.Ptr:
		if rv.IsNil() {
			return "nil"
		}
		return s.serializeValue(rv.Elem().Interface())

	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return s.serializeSequence("slice", rv)

	case reflect.Array:
		return s.serializeSequence("array", rv)

	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return s.serializeMap(rv)

	case reflect.Struct:
		return s.serializeStruct(rv, rt)

	case reflect.Chan:
		return fmt.Sprintf("chan:%p", v)

	case reflect.String:
		// %q escapes quotes and backslashes, so a string containing the
		// separator (or a quoted rendering of another value) cannot
		// produce the same segments as a different argument list.
		return fmt.Sprintf("str:%q", rv.String())

	case reflect.Interface:
		if rv.IsNil() {
			return "interface:nil"
		}
		return s.serializeValue(rv.Elem().Interface())
	}

	if s.isBasicType(rt.Kind()) {
		return fmt.Sprintf("%v", v)
	}

	return s.jsonFallback(v)
}

// serializeSequence handles slice and array serialization recursively.
func (s *defaultKeySerializer) serializeSequence(kind string, rv reflect.Value) string {
	length := rv.Len()
	parts := make([]string, length)

	for i := 0; i < length; i++ {
		parts[i] = s.serializeValue(rv.Index(i).Interface())
	}

	return fmt.Sprintf("%s[%d]:{%s}", kind, length, strings.Join(parts, ","))
}

// serializeMap handles map serialization with sorted keys for determinism.
func (s *defaultKeySerializer) serializeMap(rv reflect.Value) string {
	keys := rv.MapKeys()

	type pair struct {
		key   string
		value string
	}

	pairs := make([]pair, len(keys))
	for i, k := range keys {
		pairs[i] = pair{
			key:   s.serializeValue(k.Interface()),
			value: s.serializeValue(rv.MapIndex(k).Interface()),
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	rendered := make([]string, len(pairs))
	for i, p := range pairs {
		rendered[i] = p.key + "=" + p.value
	}

	return fmt.Sprintf("map[%d]:{%s}", len(rendered), strings.Join(rendered, ","))
}

// serializeStruct handles struct serialization with field names.
func (s *defaultKeySerializer) serializeStruct(rv reflect.Value, rt reflect.Type) string {
	numFields := rv.NumField()
	parts := make([]string, 0, numFields)

	for i := 0; i < numFields; i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		fieldValue := rv.Field(i)
		if !fieldValue.CanInterface() {
			continue
		}

		parts = append(parts, field.Name+":"+s.serializeValue(fieldValue.Interface()))
	}

	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ","))
}

// isBasicType checks if a kind represents a basic Go type.
func (s *defaultKeySerializer) isBasicType(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// jsonFallback provides JSON serialization as a last resort.
func (s *defaultKeySerializer) jsonFallback(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// If JSON marshaling fails, use type and pointer info
		rv := reflect.ValueOf(v)
		rt := reflect.TypeOf(v)
		if rv.CanAddr() {
			return fmt.Sprintf("fallback:%s:%x", rt.String(), rv.UnsafeAddr())
		}
		return fmt.Sprintf("fallback:%s", rt.String())
	}
	return "json:" + string(data)
}
