package printf

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMissingArgument reports a directive with no argument left to consume.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentKind reports an argument that cannot serve the requested kind.
	ErrArgumentKind = errors.New("argument kind mismatch")
)

// ArgError describes a caller contract violation detected by Args. Args
// panics with an *ArgError since Run has no error path.
type ArgError struct {
	Index int
	Kind  ArgType
	Value any
	Err   error
}

func (e *ArgError) Error() string {
	if errors.Is(e.Err, ErrMissingArgument) {
		return fmt.Sprintf("printf: argument %d (%s): %s", e.Index, e.Kind, e.Err)
	}
	return fmt.Sprintf("printf: argument %d: cannot use %T as %s: %s", e.Index, e.Value, e.Kind, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

// Args is a Source over a Go format string and a Go argument list.
//
// Integers of any width, bools and uintptrs are truncated to a 32 bit word,
// floats are narrowed to float32, strings (string, []byte, fmt.Stringer,
// error) are kept in a table and handed out by index, and pointer-like values
// are passed as their address.
type Args struct {
	format  string
	args    []any
	next    int
	strings []string
}

func NewArgs(format string, args []any) *Args {
	return &Args{format: format, args: args}
}

func (a *Args) FormatChar(offset uint32) byte {
	if uint64(offset) >= uint64(len(a.format)) {
		return 0
	}
	return a.format[offset]
}

func (a *Args) StringChar(h Handle, offset uint32) byte {
	if uint64(h) >= uint64(len(a.strings)) {
		return 0
	}
	s := a.strings[h]
	if uint64(offset) >= uint64(len(s)) {
		return 0
	}
	return s[offset]
}

// Used returns how many arguments have been consumed so far.
func (a *Args) Used() int { return a.next }

// Len returns the number of arguments supplied.
func (a *Args) Len() int { return len(a.args) }

func (a *Args) Arg(kind ArgType) Value {
	if a.next >= len(a.args) {
		panic(&ArgError{Index: a.next, Kind: kind, Err: ErrMissingArgument})
	}
	index, v := a.next, a.args[a.next]
	a.next++

	switch kind {
	case I8, I16, I32:
		if w, ok := intWord(v); ok {
			return IntValue(kind, w)
		}
	case Float:
		if f, ok := floatArg(v); ok {
			return FloatValue(f)
		}
	case Str:
		if s, ok := stringArg(v); ok {
			a.strings = append(a.strings, s)
			return StrValue(Handle(len(a.strings) - 1))
		}
	case Ptr:
		if p, ok := pointerArg(v); ok {
			return PtrValue(p)
		}
	}
	panic(&ArgError{Index: index, Kind: kind, Value: v, Err: ErrArgumentKind})
}

func intWord(v any) (uint32, bool) {
	switch x := v.(type) {
	case int:
		return uint32(x), true
	case int8:
		return uint32(x), true
	case int16:
		return uint32(x), true
	case int32:
		return uint32(x), true
	case int64:
		return uint32(x), true
	case uint:
		return uint32(x), true
	case uint8:
		return uint32(x), true
	case uint16:
		return uint32(x), true
	case uint32:
		return x, true
	case uint64:
		return uint32(x), true
	case uintptr:
		return uint32(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint32(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint32(rv.Uint()), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func floatArg(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return float32(rv.Float()), true
	}
	return 0, false
}

func stringArg(v any) (string, bool) {
	// a nil pointer cannot be asked for its text
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", false
	}

	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func pointerArg(v any) (uint64, bool) {
	if v == nil {
		return 0, true
	}
	if p, ok := v.(uintptr); ok {
		return uint64(p), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func, reflect.Chan, reflect.Map, reflect.Slice:
		return uint64(rv.Pointer()), true
	case reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}
