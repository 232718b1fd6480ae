package printf

import (
	"math"
	"strconv"
)

// NoValue marks a width or precision that was not given.
const NoValue int32 = -1

// Flags is the set of flag characters seen in a directive.
type Flags uint8

const (
	FlagLeft  Flags = 1 << iota // '-'
	FlagPlus                    // '+'
	FlagSpace                   // ' '
	FlagAlt                     // '#'
	FlagZero                    // '0'
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Length is the length modifier of a directive.
type Length uint8

const (
	LengthNone Length = iota
	LengthH
	LengthHH
	LengthL
	LengthLL
	LengthJ
	LengthZ
	LengthT
)

var lengthText = [...]string{"", "h", "hh", "l", "ll", "j", "z", "t"}

func (l Length) String() string {
	if int(l) < len(lengthText) {
		return lengthText[l]
	}
	return "?"
}

// LengthMode decides what a length modifier does to argument fetching.
type LengthMode uint8

const (
	// Legacy32 parses length modifiers but ignores them: the caller promotes
	// every integer to 32 bits before the call, so all integers are fetched
	// and rendered through the same 32 bit path.
	Legacy32 LengthMode = iota
)

const lengthMode = Legacy32

// integerKind returns the argument kind fetched for an integer conversion.
func integerKind(mode LengthMode, _ Length) ArgType {
	switch mode {
	case Legacy32:
		return I32
	}
	return I32
}

// Directive is one parsed %... conversion.
type Directive struct {
	Flags     Flags
	Width     int32 // NoValue when absent
	Precision int32 // NoValue when absent
	Length    Length
	Verb      byte

	// set when the value was given as '*' and read from the argument list
	WidthFromArg     bool
	PrecisionFromArg bool
}

// String rebuilds the directive text. Widths and precisions taken from an
// argument are written as '*'.
func (d Directive) String() string {
	b := []byte{'%'}
	for _, f := range []struct {
		flag Flags
		c    byte
	}{{FlagLeft, '-'}, {FlagPlus, '+'}, {FlagSpace, ' '}, {FlagAlt, '#'}, {FlagZero, '0'}} {
		if d.Flags.Has(f.flag) {
			b = append(b, f.c)
		}
	}
	switch {
	case d.WidthFromArg:
		b = append(b, '*')
	case d.Width >= 0:
		b = strconv.AppendInt(b, int64(d.Width), 10)
	}
	switch {
	case d.PrecisionFromArg:
		b = append(b, '.', '*')
	case d.Precision >= 0:
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(d.Precision), 10)
	}
	b = append(b, d.Length.String()...)
	if d.Verb != 0 {
		b = append(b, d.Verb)
	}
	return string(b)
}

// parseDirective parses everything after a '%' up to the specifier. The
// cursor is left on the specifier character.
func (r *renderer) parseDirective() Directive {
	d := Directive{Width: NoValue, Precision: NoValue}
	d.Flags = r.parseFlags()
	d.Width, d.WidthFromArg = r.parseWidth()
	if r.peek() == '.' {
		r.cursor++
		d.Precision, d.PrecisionFromArg = r.parseWidth()
	}
	d.Length = r.parseLength()
	d.Verb = r.peek()
	return d
}

func (r *renderer) parseFlags() Flags {
	var flags Flags
	for {
		switch r.peek() {
		case '-':
			flags |= FlagLeft
		case '+':
			flags |= FlagPlus
		case ' ':
			flags |= FlagSpace
		case '#':
			flags |= FlagAlt
		case '0':
			flags |= FlagZero
		default:
			return flags
		}
		r.cursor++
	}
}

// parseWidth reads a width or precision: digits, '*' or nothing. fromArg
// reports a '*'.
func (r *renderer) parseWidth() (n int32, fromArg bool) {
	if r.peek() == '*' {
		r.cursor++
		return r.f.Arg(I16).Int32(), true
	}
	if v, ok := r.toNumber(); ok {
		return v, false
	}
	return NoValue, false
}

func (r *renderer) toNumber() (int32, bool) {
	var n int64
	found := false
	for {
		c := r.peek()
		if c < '0' || c > '9' {
			return int32(n), found
		}
		if n = n*10 + int64(c-'0'); n > math.MaxInt32 {
			n = math.MaxInt32
		}
		r.cursor++
		found = true
	}
}

func (r *renderer) parseLength() Length {
	switch r.peek() {
	case 'h':
		r.cursor++
		if r.peek() == 'h' {
			r.cursor++
			return LengthHH
		}
		return LengthH
	case 'l':
		r.cursor++
		if r.peek() == 'l' {
			r.cursor++
			return LengthLL
		}
		return LengthL
	case 'j':
		r.cursor++
		return LengthJ
	case 'z':
		r.cursor++
		return LengthZ
	case 't':
		r.cursor++
		return LengthT
	}
	return LengthNone
}
