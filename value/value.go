package value

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Kind identifies one of the nine XML-RPC value types
type Kind uint8

const (
	KindNil Kind = iota
	KindBoolean
	KindInteger
	KindDouble
	KindString
	KindDateTime
	KindBinary
	KindArray
	KindStruct
)

var kindNames = [...]string{
	KindNil:      "nil",
	KindBoolean:  "boolean",
	KindInteger:  "int",
	KindDouble:   "double",
	KindString:   "string",
	KindDateTime: "dateTime.iso8601",
	KindBinary:   "base64",
	KindArray:    "array",
	KindStruct:   "struct",
}

// String returns the XML-RPC element name for the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is an immutable XML-RPC value. The zero Value is Nil.
type Value struct {
	kind    Kind
	b       bool
	i       int64
	f       float64
	s       string
	t       time.Time
	bin     []byte
	elems   []Value
	members []Member
}

// Member is a single named entry of a struct value
type Member struct {
	Name  string
	Value Value
}

// Nil returns the nil value
func Nil() Value { return Value{} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Int returns an integer value
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Double returns a double value. Whole numbers stay doubles.
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, s: s} }

// DateTime returns a dateTime value. Only the wall clock fields of t are
// serialized; the location is never emitted.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Binary returns a base64 value holding a copy of b
func Binary(b []byte) Value {
	return Value{kind: KindBinary, bin: append([]byte(nil), b...)}
}

// Base64 decodes an already encoded payload into a binary value
func Base64(encoded string) (Value, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedBinary, err)
	}
	return Value{kind: KindBinary, bin: b}, nil
}

// Array returns an array value holding a copy of elems
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: append([]Value{}, elems...)}
}

// StructOf returns a struct value whose members keep the given order.
// Duplicate names are kept.
func StructOf(members ...Member) Value {
	return Value{kind: KindStruct, members: append([]Member{}, members...)}
}

// Field is shorthand for a Member literal
func Field(name string, v Value) Member { return Member{Name: name, Value: v} }

// Kind reports the type of v
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the nil value
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean payload, false for other kinds
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload, 0 for other kinds
func (v Value) AsInt() int64 { return v.i }

// AsDouble returns the double payload, 0 for other kinds
func (v Value) AsDouble() float64 { return v.f }

// AsString returns the string payload
func (v Value) AsString() string { return v.s }

// AsTime returns the dateTime payload
func (v Value) AsTime() time.Time { return v.t }

// Len returns the number of array elements or struct members
func (v Value) Len() int { return len(v.elems) + len(v.members) }

// Index returns array element i. It panics when i is out of range.
func (v Value) Index(i int) Value { return v.elems[i] }

// Member returns struct member i. It panics when i is out of range.
func (v Value) Member(i int) Member { return v.members[i] }

// AsBytes returns a copy of the binary payload
func (v Value) AsBytes() []byte { return append([]byte(nil), v.bin...) }

// Elements returns a copy of the array elements
func (v Value) Elements() []Value { return append([]Value(nil), v.elems...) }

// Members returns a copy of the struct members in order
func (v Value) Members() []Member { return append([]Member(nil), v.members...) }

// Lookup returns the last member named name
func (v Value) Lookup(name string) (Value, bool) {
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Name == name {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether v and o hold the same kind and payload.
// DateTimes compare by wall clock fields.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBoolean:
		return v.b == o.b
	case KindInteger:
		return v.i == o.i
	case KindDouble:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindDateTime:
		return v.t.Format(WireTimeLayout) == o.t.Format(WireTimeLayout)
	case KindBinary:
		return string(v.bin) == string(o.bin)
	case KindArray:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case KindStruct:
		if len(v.members) != len(o.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Name != o.members[i].Name || !v.members[i].Value.Equal(o.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// WireTimeLayout is the dateTime.iso8601 layout: YYYYMMDDTHH:MM:SS
const WireTimeLayout = "20060102T15:04:05"
