package canonicaljson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	gojson "github.com/goccy/go-json"

	"github.com/osvaldoandrade/canonhash/internal/domain"
)

// fragment is the serialized text of one subtree. ok=false means the node
// has no encoding at all: objects omit the member, arrays render null.
type fragment struct {
	text string
	ok   bool
}

type encoder struct {
	run runFunc
}

// ancestry is the chain of container pointers above the current node. It is
// immutable, so concurrently serialized siblings can extend it without
// coordination; a pointer reappearing on its own chain is a cycle.
type ancestry struct {
	ptr    uintptr
	parent *ancestry
}

func (a *ancestry) contains(ptr uintptr) bool {
	for node := a; node != nil; node = node.parent {
		if node.ptr == ptr {
			return true
		}
	}
	return false
}

// encode applies the replacer gate to one node, then dispatches. Without a
// replacer a bare func value degrades to no-value; with one, the replacer
// sees every (key, value) pair exactly once, the root under the empty key.
func (e encoder) encode(ctx context.Context, key string, value any, replacer domain.Replacer, parents *ancestry) (fragment, error) {
	if replacer == nil {
		if domain.IsFunc(value) {
			return fragment{}, nil
		}
	} else {
		value = replacer(key, value)
	}
	return e.encodeValue(ctx, value, replacer, parents)
}

func (e encoder) encodeValue(ctx context.Context, value any, replacer domain.Replacer, parents *ancestry) (fragment, error) {
	if err := ctx.Err(); err != nil {
		return fragment{}, err
	}
	if value == nil {
		return fragment{text: "null", ok: true}, nil
	}

	switch v := value.(type) {
	case domain.UndefinedValue:
		return fragment{}, nil
	case json.Number:
		return numberFragment(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return fragment{text: "true", ok: true}, nil
		}
		return fragment{text: "false", ok: true}, nil
	case reflect.String:
		quoted, err := quoteString(rv.String())
		if err != nil {
			return fragment{}, err
		}
		return fragment{text: quoted, ok: true}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fragment{text: strconv.FormatInt(rv.Int(), 10), ok: true}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fragment{text: strconv.FormatUint(rv.Uint(), 10), ok: true}, nil
	case reflect.Float32:
		return floatFragment(rv.Float(), 32), nil
	case reflect.Float64:
		return floatFragment(rv.Float(), 64), nil
	case reflect.Func:
		return fragment{}, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return fragment{text: "null", ok: true}, nil
		}
		ptr := rv.Pointer()
		if parents.contains(ptr) {
			return fragment{}, ErrCycle
		}
		return e.encodeValue(ctx, rv.Elem().Interface(), replacer, &ancestry{ptr: ptr, parent: parents})
	case reflect.Slice:
		if rv.IsNil() {
			return fragment{text: "null", ok: true}, nil
		}
		return e.encodeArray(ctx, rv, replacer, parents)
	case reflect.Array:
		return e.encodeArray(ctx, rv, replacer, parents)
	case reflect.Map:
		if rv.IsNil() {
			return fragment{text: "null", ok: true}, nil
		}
		if rv.Type().Key().Kind() == reflect.String {
			return e.encodeObject(ctx, rv, replacer, parents)
		}
		return e.encodeFallback(ctx, value, replacer, parents)
	default:
		return e.encodeFallback(ctx, value, replacer, parents)
	}
}

// encodeArray serializes elements in index order, each under its stringified
// index key. Elements without an encoding render null so positions survive.
func (e encoder) encodeArray(ctx context.Context, rv reflect.Value, replacer domain.Replacer, parents *ancestry) (fragment, error) {
	n := rv.Len()
	if n == 0 {
		return fragment{text: "[]", ok: true}, nil
	}
	if rv.Kind() == reflect.Slice {
		ptr := rv.Pointer()
		if parents.contains(ptr) {
			return fragment{}, ErrCycle
		}
		parents = &ancestry{ptr: ptr, parent: parents}
	}

	elems := make([]fragment, n)
	tasks := make([]func() error, n)
	for i := 0; i < n; i++ {
		i := i
		child := rv.Index(i).Interface()
		tasks[i] = func() error {
			frag, err := e.encode(ctx, strconv.Itoa(i), child, replacer, parents)
			if err != nil {
				return err
			}
			elems[i] = frag
			return nil
		}
	}
	if err := e.run(tasks); err != nil {
		return fragment{}, err
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, frag := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		if frag.ok {
			b.WriteString(frag.text)
		} else {
			b.WriteString("null")
		}
	}
	b.WriteByte(']')
	return fragment{text: b.String(), ok: true}, nil
}

// encodeObject serializes a string-keyed map. Members without an encoding
// are omitted. The retained `"key":value` fragments are sorted as rendered
// text, not by bare key; that single comparison keeps nested output
// deterministic without a secondary comparator.
func (e encoder) encodeObject(ctx context.Context, rv reflect.Value, replacer domain.Replacer, parents *ancestry) (fragment, error) {
	keys := rv.MapKeys()
	if len(keys) == 0 {
		return fragment{text: "{}", ok: true}, nil
	}
	ptr := rv.Pointer()
	if parents.contains(ptr) {
		return fragment{}, ErrCycle
	}
	parents = &ancestry{ptr: ptr, parent: parents}

	type member struct {
		name  string
		value any
	}
	members := make([]member, 0, len(keys))
	for _, k := range keys {
		members = append(members, member{name: k.String(), value: rv.MapIndex(k).Interface()})
	}

	rendered := make([]string, len(members))
	tasks := make([]func() error, len(members))
	for i := range members {
		i := i
		m := members[i]
		tasks[i] = func() error {
			frag, err := e.encode(ctx, m.name, m.value, replacer, parents)
			if err != nil {
				return err
			}
			if !frag.ok {
				return nil
			}
			quoted, err := quoteString(m.name)
			if err != nil {
				return err
			}
			rendered[i] = quoted + ":" + frag.text
			return nil
		}
	}
	if err := e.run(tasks); err != nil {
		return fragment{}, err
	}

	retained := make([]string, 0, len(rendered))
	for _, frag := range rendered {
		if frag != "" {
			retained = append(retained, frag)
		}
	}
	sort.Strings(retained)

	var b strings.Builder
	b.WriteByte('{')
	for i, frag := range retained {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(frag)
	}
	b.WriteByte('}')
	return fragment{text: b.String(), ok: true}, nil
}

// encodeFallback routes values outside the plain map/slice/literal
// vocabulary (structs, typed maps, TextMarshalers) through the host
// marshaller and re-reads the result with numbers kept as literal text, so
// the canonical form never invents a numeric representation of its own.
func (e encoder) encodeFallback(ctx context.Context, value any, replacer domain.Replacer, parents *ancestry) (fragment, error) {
	raw, err := gojson.Marshal(value)
	if err != nil {
		return fragment{}, fmt.Errorf("encode %T: %w", value, err)
	}
	dec := gojson.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return fragment{}, fmt.Errorf("reread %T: %w", value, err)
	}
	return e.encodeValue(ctx, decoded, replacer, parents)
}

func quoteString(s string) (string, error) {
	quoted, err := jsontext.AppendQuote(nil, s)
	if err != nil {
		return "", fmt.Errorf("quote %q: %w", s, err)
	}
	return string(quoted), nil
}

func numberFragment(n json.Number) (fragment, error) {
	if !jsontext.Value(n).IsValid() {
		return fragment{}, fmt.Errorf("%w: %q", ErrInvalidNumber, string(n))
	}
	return fragment{text: n.String(), ok: true}, nil
}

// floatFragment mirrors encoding/json: shortest round-trip form, exponent
// notation only outside [1e-6, 1e21), and NaN or an infinity becomes null
// the way standard stringification does.
func floatFragment(f float64, bits int) fragment {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fragment{text: "null", ok: true}
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	text := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		if n := len(text); n >= 4 && text[n-4] == 'e' && text[n-3] == '-' && text[n-2] == '0' {
			text[n-2] = text[n-1]
			text = text[:n-1]
		}
	}
	return fragment{text: string(text), ok: true}
}
