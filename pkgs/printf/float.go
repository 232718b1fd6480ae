package printf

import (
	"math"
	"strconv"
)

const defaultPrecision = 6

// Notation selects how a float is written.
type Notation uint8

const (
	NotationFixed    Notation = iota // f, F
	NotationExp                      // e, E
	NotationShortest                 // g, G
)

// FloatConverter turns a float into text. The interpreter does no digit
// generation of its own; a Formatter implementing FloatConverter replaces
// DefaultFloatConverter.
//
// width is NoValue or the minimum field width, precision is always set.
type FloatConverter interface {
	AppendFloat(dst []byte, v float32, width, precision int, notation Notation, upper bool) []byte
}

// DefaultFloatConverter formats with strconv, writes C style "nan"/"inf" and
// right-justifies the result with spaces.
var DefaultFloatConverter FloatConverter = strconvConverter{}

type strconvConverter struct{}

var notationVerbs = [...]byte{NotationFixed: 'f', NotationExp: 'e', NotationShortest: 'g'}

func (strconvConverter) AppendFloat(dst []byte, v float32, width, precision int, notation Notation, upper bool) []byte {
	var scratch [32]byte
	text := scratch[:0]

	f := float64(v)
	switch {
	case math.IsNaN(f):
		text = append(text, "nan"...)
	case math.IsInf(f, 1):
		text = append(text, "inf"...)
	case math.IsInf(f, -1):
		text = append(text, "-inf"...)
	default:
		text = strconv.AppendFloat(text, f, notationVerbs[notation], precision, 32)
	}
	if upper {
		for i, c := range text {
			if c >= 'a' && c <= 'z' {
				text[i] = c - 'a' + 'A'
			}
		}
	}

	for pad := width - len(text); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	return append(dst, text...)
}

func floatNotation(verb byte) (Notation, bool) {
	switch verb {
	case 'F':
		return NotationFixed, true
	case 'e':
		return NotationExp, false
	case 'E':
		return NotationExp, true
	case 'g':
		return NotationShortest, false
	case 'G':
		return NotationShortest, true
	}
	return NotationFixed, false
}

func (r *renderer) outFloat(v float32, d Directive, notation Notation, upper bool) int32 {
	start := r.size

	precision := d.Precision
	if precision < 0 {
		precision = defaultPrecision
	}

	var buf [32]byte
	for _, c := range r.conv.AppendFloat(buf[:0], v, int(d.Width), int(precision), notation, upper) {
		r.put(c)
	}
	return r.size - start
}
