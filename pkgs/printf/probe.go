package printf

// probe runs the interpreter without real arguments and records what a
// format string asks for. Every argument is a zero value and every string is
// empty, so '*' widths read as 0.
type probe struct {
	discardSink
	format     string
	args       []Argument
	directives []Directive
}

// Argument is one value a format string consumes: its kind and the specifier
// that reads it, '*' for a width or precision.
type Argument struct {
	Kind ArgType
	Verb byte
}

func (p *probe) FormatChar(offset uint32) byte {
	if uint64(offset) >= uint64(len(p.format)) {
		return 0
	}
	return p.format[offset]
}

func (p *probe) Arg(kind ArgType) Value {
	verb := byte('*')
	// '*' values are read while parsing, before the directive is observed
	if kind != I16 && len(p.directives) > 0 {
		verb = p.directives[len(p.directives)-1].Verb
	}
	p.args = append(p.args, Argument{Kind: kind, Verb: verb})
	return Value{Kind: kind}
}

func (p *probe) StringChar(Handle, uint32) byte { return 0 }

func (p *probe) observeDirective(d Directive) {
	p.directives = append(p.directives, d)
}

// Arguments returns the arguments format consumes, in order.
func Arguments(format string) []Argument {
	p := &probe{format: format}
	Run(p)
	return p.args
}

// Kinds returns the argument kinds format consumes, in order. Widths and
// precisions given as '*' show up as I16 before the value they apply to.
func Kinds(format string) []ArgType {
	args := Arguments(format)
	kinds := make([]ArgType, 0, len(args))
	for _, a := range args {
		kinds = append(kinds, a.Kind)
	}
	return kinds
}

// Directives returns the directives of format in order, including "%%" and
// unknown specifiers.
func Directives(format string) []Directive {
	p := &probe{format: format}
	Run(p)
	return p.directives
}
