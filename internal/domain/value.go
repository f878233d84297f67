package domain

import "reflect"

// Replacer transforms a (key, value) pair before it is serialized. It is
// invoked exactly once per node; the root node is passed the empty key.
// The returned value replaces the node. While the replaced value remains a
// container (object or array) the replacer keeps applying to its members.
type Replacer func(key string, value any) any

// UndefinedValue is a member with no canonical encoding. Objects omit such
// members entirely; arrays render them as null so element positions are
// preserved. Bare func values behave the same way.
type UndefinedValue struct{}

// Undefined is the UndefinedValue instance callers place in value trees.
var Undefined = UndefinedValue{}

// IsUndefined reports whether v carries no canonical encoding by itself.
func IsUndefined(v any) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// IsFunc reports whether v is a bare func value.
func IsFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}
