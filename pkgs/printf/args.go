// Package printf implements a small printf/sprintf engine for constrained
// targets.
//
// A single interpreter ([Run]) walks a format string and drives a [Formatter],
// which combines an argument [Source] and a character [Sink]. Two concrete
// pairs are provided: one writing to an io.Writer (console mode) and one
// writing into a caller supplied fixed-size buffer (format-into-string mode).
//
// Supported grammar:
//
//	%[flags][width|*][.precision|*][length]specifier
//
//	flags      - + space # 0
//	length     h hh l ll j z t   (parsed, inert: all integers are 32 bit)
//	specifier  d i u o x X f F e E g G c b s p %
//
// Unsupported: %n, %a/%A, the L length, wide characters and positional
// arguments. Unknown specifiers are echoed literally.
package printf

import "math"

// ArgType is the kind of argument requested from a Source.
type ArgType uint8

const (
	I8 ArgType = iota
	I16
	I32
	Float
	Str
	Ptr
)

func (t ArgType) String() string {
	switch t {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case Float:
		return "float"
	case Str:
		return "str"
	case Ptr:
		return "ptr"
	}
	return "unknown"
}

// Handle references a string owned by a Source. Its meaning is private to the
// Source that produced it: an index, an address in program memory, etc.
type Handle uint64

// Value is one argument as delivered by a Source.
//
// Integer kinds carry the caller-promoted 32 bit word, Float carries the
// IEEE-754 float32 bit pattern, Str carries a Handle and Ptr a pointer sized
// word.
type Value struct {
	Kind ArgType
	Bits uint64
}

func IntValue(kind ArgType, v uint32) Value { return Value{Kind: kind, Bits: uint64(v)} }
func FloatValue(f float32) Value          { return Value{Kind: Float, Bits: uint64(math.Float32bits(f))} }
func StrValue(h Handle) Value             { return Value{Kind: Str, Bits: uint64(h)} }
func PtrValue(p uint64) Value             { return Value{Kind: Ptr, Bits: p} }

func (v Value) Int32() int32     { return int32(uint32(v.Bits)) }
func (v Value) Uint32() uint32   { return uint32(v.Bits) }
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.Bits)) }
func (v Value) Handle() Handle   { return Handle(v.Bits) }
func (v Value) Pointer() uint64  { return v.Bits }

// Source supplies the format string, referenced strings and arguments.
// The indirection lets the same interpreter run over normal memory or over a
// restricted address space such as program memory on a microcontroller.
type Source interface {
	// FormatChar returns the byte at offset in the format string, 0 past its end.
	FormatChar(offset uint32) byte
	// Arg consumes and returns the next argument.
	Arg(kind ArgType) Value
	// StringChar returns the byte at offset in the string h, 0 past its end.
	StringChar(h Handle, offset uint32) byte
}

// Sink accepts the rendered output one character at a time.
type Sink interface {
	PutChar(c byte)
	// Finalize is called exactly once, after the whole format string is consumed.
	Finalize()
}

// Formatter is what the interpreter runs over.
type Formatter interface {
	Source
	Sink
}

// formatter glues an independent Source and Sink together.
type formatter struct {
	Source
	Sink
}

// Join combines src and sink into a Formatter.
func Join(src Source, sink Sink) Formatter {
	if fc, ok := sink.(FloatConverter); ok {
		return &convertingFormatter{formatter{src, sink}, fc}
	}
	if fc, ok := src.(FloatConverter); ok {
		return &convertingFormatter{formatter{src, sink}, fc}
	}
	return &formatter{src, sink}
}

type convertingFormatter struct {
	formatter
	FloatConverter
}
