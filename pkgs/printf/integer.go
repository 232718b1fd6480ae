package printf

// Big enough for a 64 bit value in octal.
const maxIntegerBufferSize = 24

const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// intToString writes value in base into the tail of buf and returns the
// digits, most significant first.
func intToString(buf *[maxIntegerBufferSize]byte, value uint64, base uint64, upper bool) []byte {
	if value == 0 {
		buf[len(buf)-1] = '0'
		return buf[len(buf)-1:]
	}

	digits := lowerDigits
	if upper {
		digits = upperDigits
	}
	i := len(buf)
	for value != 0 {
		i--
		buf[i] = digits[value%base]
		value /= base
	}
	return buf[i:]
}

// outInteger renders value and returns the number of characters emitted.
//
// The sign and the '#' prefix go out before the padding, so zero padding
// lands between them and the digits ("-0042"). The '-', '+' and ' ' flags and
// the precision are not implemented for integers.
func (r *renderer) outInteger(value uint64, signed bool, d Directive, base uint64, upper bool) int32 {
	start := r.size
	width := d.Width

	if signed && int64(value) < 0 {
		value = uint64(-int64(value))
		r.put('-')
		width--
	}

	// A zero in octal already starts with its '0'.
	if d.Flags.Has(FlagAlt) && base != 10 && (base != 8 || value != 0) {
		r.put('0')
		width--
		if base == 16 {
			if upper {
				r.put('X')
			} else {
				r.put('x')
			}
			width--
		}
	}

	var buf [maxIntegerBufferSize]byte
	digits := intToString(&buf, value, base, upper)

	padChar := byte(' ')
	if d.Flags.Has(FlagZero) {
		padChar = '0'
	}
	for pad := width - int32(len(digits)); pad > 0; pad-- {
		r.put(padChar)
	}

	for _, c := range digits {
		r.put(c)
	}
	return r.size - start
}
