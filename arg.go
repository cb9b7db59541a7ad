package mufmt

import (
	"fmt"
	"unsafe"
)

// Kind identifies the type of value an [Arg] carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindChar
	KindPointer
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat:   "float",
	KindString:  "string",
	KindChar:    "char",
	KindPointer: "pointer",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arg is one typed argument for [Render]. The zero Arg has kind
// [KindInvalid] and renders nothing.
type Arg struct {
	kind Kind
	bits uint64 // int, uint, char and pointer payloads
	f    float64
	s    string
}

// Int returns a signed integer argument.
func Int(v int64) Arg { return Arg{kind: KindInt, bits: uint64(v)} }

// Uint returns an unsigned integer argument.
func Uint(v uint64) Arg { return Arg{kind: KindUint, bits: v} }

// Float returns a floating-point argument.
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// Str returns a string argument.
func Str(v string) Arg { return Arg{kind: KindString, s: v} }

// Char returns a single-byte argument.
func Char(v byte) Arg { return Arg{kind: KindChar, bits: uint64(v)} }

// Ptr returns a pointer argument, rendered by %p.
func Ptr(v uintptr) Arg { return Arg{kind: KindPointer, bits: uint64(v)} }

// Kind reports the kind of value a carries.
func (a Arg) Kind() Kind { return a.kind }

// String describes the argument for diagnostics, e.g. "int(-3)".
func (a Arg) String() string {
	switch a.kind {
	case KindInt:
		return fmt.Sprintf("int(%d)", int64(a.bits))
	case KindUint:
		return fmt.Sprintf("uint(%d)", a.bits)
	case KindFloat:
		return fmt.Sprintf("float(%g)", a.f)
	case KindString:
		return fmt.Sprintf("string(%q)", a.s)
	case KindChar:
		return fmt.Sprintf("char(%q)", byte(a.bits))
	case KindPointer:
		return fmt.Sprintf("pointer(%#x)", a.bits)
	default:
		return "invalid"
	}
}

func (a Arg) isInteger() bool {
	switch a.kind {
	case KindInt, KindUint, KindChar, KindPointer:
		return true
	}
	return false
}

// signed returns the value for %d; integer kinds are reinterpreted.
func (a Arg) signed() (int64, bool) {
	if !a.isInteger() {
		return 0, false
	}
	return int64(a.bits), true
}

// unsigned returns the value for %b %o %x %p; integer kinds are reinterpreted.
func (a Arg) unsigned() (uint64, bool) {
	if !a.isInteger() {
		return 0, false
	}
	return a.bits, true
}

// float returns the value for %e %f; integers are converted numerically.
func (a Arg) float() (float64, bool) {
	switch a.kind {
	case KindFloat:
		return a.f, true
	case KindInt:
		return float64(int64(a.bits)), true
	case KindUint, KindChar, KindPointer:
		return float64(a.bits), true
	}
	return 0, false
}

// char returns the byte for %c: the low byte of any integer kind.
func (a Arg) char() (byte, bool) {
	if !a.isInteger() {
		return 0, false
	}
	return byte(a.bits), true
}

// accepts reports whether a can be rendered by verb.
func (a Arg) accepts(verb byte) bool {
	switch verb {
	case 's':
		return a.kind == KindString
	case 'e', 'f':
		_, ok := a.float()
		return ok
	default:
		return a.isInteger()
	}
}

// ArgOf converts an ordinary Go value to an [Arg]. Integers of every width,
// floats, strings, byte slices, runes (as their low byte for %c, full value
// for %d), uintptr and unsafe.Pointer are supported, as are [fmt.Stringer]
// and error values, which become strings. Anything else yields an invalid
// Arg.
func ArgOf(v any) Arg {
	switch x := v.(type) {
	case Arg:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Char(x)
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case uintptr:
		return Ptr(x)
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case string:
		return Str(x)
	case []byte:
		return Str(string(x))
	case error:
		return Str(x.Error())
	case fmt.Stringer:
		return Str(x.String())
	default:
		return Arg{}
	}
}

// ArgsOf converts each value with [ArgOf].
func ArgsOf(vals ...any) []Arg {
	if len(vals) == 0 {
		return nil
	}
	args := make([]Arg, len(vals))
	for i, v := range vals {
		args[i] = ArgOf(v)
	}
	return args
}
