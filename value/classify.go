package value

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxDepth bounds nesting when converting and rendering values
const DefaultMaxDepth = 256

// maxSafeInteger is the largest integer a float64 holds exactly (2^53-1)
const maxSafeInteger = 1<<53 - 1

// maxPointerHops limits pointer-to-pointer chains such as a *any holding itself
const maxPointerHops = 64

// Marshaler is implemented by types that choose their own XML-RPC value
type Marshaler interface {
	MarshalXMLRPC() (Value, error)
}

// Record is a struct whose members are dynamic values, emitted in slice order
type Record []Pair

// Pair is a single Record entry
type Pair struct {
	Name  string
	Value any
}

var timeType = reflect.TypeOf(time.Time{})

// Classify reports which XML-RPC kind x maps to. Nested values are not
// inspected, so an array holding a func still classifies as KindArray.
func Classify(x any) (Kind, error) {
	k, _, err := classify(x)
	return k, err
}

// From converts x into a Value tree using DefaultMaxDepth
func From(x any) (Value, error) {
	return FromDepth(x, DefaultMaxDepth)
}

// FromDepth converts x into a Value tree, failing with ErrTooDeep when
// nesting exceeds maxDepth. A maxDepth of zero or less selects
// DefaultMaxDepth.
func FromDepth(x any, maxDepth int) (Value, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	c := converter{maxDepth: maxDepth}
	return c.convert(x, 0, "")
}

type converter struct {
	maxDepth int
}

func (c converter) convert(x any, depth int, path string) (Value, error) {
	if depth > c.maxDepth {
		return Value{}, fmt.Errorf("%w (limit %d) at %s", ErrTooDeep, c.maxDepth, pathOrRoot(path))
	}
	kind, payload, err := classify(x)
	if err != nil {
		return Value{}, fmt.Errorf("%w at %s", err, pathOrRoot(path))
	}
	if v, ok := payload.(Value); ok {
		return v, nil
	}

	switch kind {
	case KindNil:
		return Nil(), nil
	case KindBoolean:
		return Bool(payload.(bool)), nil
	case KindInteger:
		return Int(payload.(int64)), nil
	case KindDouble:
		return Double(payload.(float64)), nil
	case KindString:
		return String(payload.(string)), nil
	case KindDateTime:
		return DateTime(payload.(time.Time)), nil
	case KindBinary:
		// classify already copied the bytes
		return Value{kind: KindBinary, bin: payload.([]byte)}, nil
	case KindArray:
		items := payload.([]any)
		elems := make([]Value, 0, len(items))
		for i, item := range items {
			ev, err := c.convert(item, depth+1, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return Value{kind: KindArray, elems: elems}, nil
	case KindStruct:
		rec := payload.(Record)
		members := make([]Member, 0, len(rec))
		for _, p := range rec {
			mv, err := c.convert(p.Value, depth+1, fmt.Sprintf("%s[%q]", path, p.Name))
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Name: p.Name, Value: mv})
		}
		return Value{kind: KindStruct, members: members}, nil
	}
	return Value{}, fmt.Errorf("%w: kind %v at %s", ErrUnsupportedType, kind, pathOrRoot(path))
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// classify returns the kind of x and a shallow payload: bool, int64,
// float64, string, time.Time, []byte, []any, Record, or a finished Value.
func classify(x any) (Kind, any, error) {
	for hops := 0; ; hops++ {
		if x == nil {
			return KindNil, nil, nil
		}
		rv := reflect.ValueOf(x)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return KindNil, nil, nil
		}
		if k, p, ok, err := classifyKnown(x); ok {
			return k, p, err
		}
		if rv.Kind() != reflect.Pointer {
			return classifyReflect(rv)
		}
		if hops >= maxPointerHops {
			return 0, nil, fmt.Errorf("%w: pointer chain through %T", ErrTooDeep, x)
		}
		x = rv.Elem().Interface()
	}
}

// classifyKnown handles concrete types without reflection
func classifyKnown(x any) (Kind, any, bool, error) {
	switch t := x.(type) {
	case Value:
		return t.kind, t, true, nil
	case *Value:
		return t.kind, *t, true, nil
	case Marshaler:
		v, err := t.MarshalXMLRPC()
		if err != nil {
			return 0, nil, true, fmt.Errorf("marshal %T: %w", x, err)
		}
		return v.kind, v, true, nil
	case time.Time:
		return KindDateTime, t, true, nil
	case []byte:
		return KindBinary, append([]byte(nil), t...), true, nil
	case bool:
		return KindBoolean, t, true, nil
	case int:
		return KindInteger, int64(t), true, nil
	case int64:
		return KindInteger, t, true, nil
	case float64:
		k, p, err := classifyFloat(t)
		return k, p, true, err
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, nil, true, fmt.Errorf("%w: json number %q", ErrUnsupportedType, string(t))
		}
		k, p, err := classifyFloat(f)
		return k, p, true, err
	case string:
		return KindString, t, true, nil
	case []any:
		return KindArray, t, true, nil
	case Record:
		return KindStruct, t, true, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		rec := make(Record, 0, len(keys))
		for _, k := range keys {
			rec = append(rec, Pair{Name: k, Value: t[k]})
		}
		return KindStruct, rec, true, nil
	}
	return classifyProto(x)
}

// classifyFloat applies the numeric shape rule: whole numbers inside the
// safe integer range are Integers, everything else is a Double.
func classifyFloat(f float64) (Kind, any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil, fmt.Errorf("%w: non-finite number %v", ErrUnsupportedType, f)
	}
	if f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger {
		return KindInteger, int64(f), nil
	}
	return KindDouble, f, nil
}

func classifyReflect(rv reflect.Value) (Kind, any, error) {
	rt := rv.Type()
	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean, rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInteger, rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, nil, fmt.Errorf("%w: %s %d overflows int64", ErrUnsupportedType, rt, u)
		}
		return KindInteger, int64(u), nil
	case reflect.Float32:
		// Go through the shortest float32 spelling so 0.1 stays 0.1
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return classifyFloat(f)
	case reflect.Float64:
		return classifyFloat(rv.Float())
	case reflect.String:
		return KindString, rv.String(), nil
	case reflect.Slice, reflect.Array:
		if rt.Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			for i := range b {
				b[i] = byte(rv.Index(i).Uint())
			}
			return KindBinary, b, nil
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return KindArray, items, nil
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return 0, nil, fmt.Errorf("%w: map key %s", ErrUnsupportedType, rt.Key())
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		rec := make(Record, 0, len(keys))
		for _, k := range keys {
			rec = append(rec, Pair{Name: k.String(), Value: rv.MapIndex(k).Interface()})
		}
		return KindStruct, rec, nil
	case reflect.Struct:
		if rt.ConvertibleTo(timeType) {
			return KindDateTime, rv.Convert(timeType).Interface().(time.Time), nil
		}
		rec, err := structRecord(rv, 0)
		if err != nil {
			return 0, nil, err
		}
		return KindStruct, rec, nil
	}
	return 0, nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rt)
}

// structRecord lists the exported fields of a Go struct in declaration
// order. The xmlrpc tag renames a field, "-" drops it and omitempty skips
// zero values. Embedded structs without a tag name are flattened, at most
// maxPointerHops levels deep so a struct embedding a pointer to itself fails.
func structRecord(rv reflect.Value, embedDepth int) (Record, error) {
	rt := rv.Type()
	if embedDepth > maxPointerHops {
		return nil, fmt.Errorf("%w: embedded structs in %s", ErrTooDeep, rt)
	}
	rec := Record{}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("xmlrpc")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fv := rv.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		if sf.Anonymous && name == "" {
			ev := fv
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct && !ev.Type().ConvertibleTo(timeType) {
				inner, err := structRecord(ev, embedDepth+1)
				if err != nil {
					return nil, err
				}
				rec = append(rec, inner...)
				continue
			}
		}
		if name == "" {
			name = sf.Name
		}
		rec = append(rec, Pair{Name: name, Value: fv.Interface()})
	}
	return rec, nil
}
