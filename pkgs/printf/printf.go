package printf

// directiveObserver is implemented by Formatters that want to see every
// parsed directive before it is rendered.
type directiveObserver interface {
	observeDirective(d Directive)
}

// renderer holds the state of one Run: the scan cursor into the format
// string and the number of characters delivered to the sink.
type renderer struct {
	f      Formatter
	conv   FloatConverter
	cursor uint32
	size   int32
}

func (r *renderer) peek() byte { return r.f.FormatChar(r.cursor) }

func (r *renderer) put(c byte) {
	r.f.PutChar(c)
	r.size++
}

func (r *renderer) puts(s string) {
	for i := 0; i < len(s); i++ {
		r.put(s[i])
	}
}

// Run interprets the format string of f, pulling arguments from f and writing
// the result to f. It returns the number of characters delivered to the sink,
// not counting anything the sink adds in Finalize.
//
// Passing fewer arguments than the format string consumes, or arguments of
// the wrong kind, is a caller error; what happens then is up to the Source.
func Run(f Formatter) int32 {
	r := renderer{f: f, conv: DefaultFloatConverter}
	if fc, ok := f.(FloatConverter); ok {
		r.conv = fc
	}
	observer, _ := f.(directiveObserver)

	for {
		c := r.peek()
		if c == 0 {
			break
		}
		if c != '%' {
			r.put(c)
			r.cursor++
			continue
		}

		r.cursor++
		d := r.parseDirective()
		if d.Verb == 0 {
			// "%" at the very end of the format string
			break
		}
		if observer != nil {
			observer.observeDirective(d)
		}
		r.render(d)
		r.cursor++
	}

	f.Finalize()
	return r.size
}

func (r *renderer) render(d Directive) {
	switch d.Verb {
	case 'd', 'i':
		r.outInteger(uint64(int64(r.integer(d).Int32())), true, d, 10, false)
	case 'u':
		r.outInteger(uint64(r.integer(d).Uint32()), false, d, 10, false)
	case 'o':
		r.outInteger(uint64(r.integer(d).Uint32()), false, d, 8, false)
	case 'x', 'X':
		r.outInteger(uint64(r.integer(d).Uint32()), false, d, 16, d.Verb == 'X')
	case 'f', 'F', 'e', 'E', 'g', 'G':
		notation, upper := floatNotation(d.Verb)
		r.outFloat(r.f.Arg(Float).Float32(), d, notation, upper)
	case 'c':
		r.put(byte(r.f.Arg(I8).Uint32()))
	case 'b':
		if r.f.Arg(I8).Uint32() != 0 {
			r.puts("true")
		} else {
			r.puts("false")
		}
	case 's':
		r.outString(r.f.Arg(Str).Handle(), d)
	case 'p':
		r.outInteger(r.f.Arg(Ptr).Pointer(), false, d, 16, false)
	case '%':
		r.put('%')
	default:
		r.put(d.Verb)
	}
}

func (r *renderer) integer(d Directive) Value {
	return r.f.Arg(integerKind(lengthMode, d.Length))
}
