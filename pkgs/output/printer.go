package output

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

type Printer interface {
	Printf(format string, a ...any) (n int, err error)
}

// ConsolePrinter renders straight to a writer, stdout when W is nil.
type ConsolePrinter struct {
	W io.Writer
}

func (c ConsolePrinter) Printf(format string, a ...any) (n int, err error) {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	sink := printf.NewWriterSink(w)
	n = render(format, a, sink)
	return n, sink.Err()
}

// BufferPrinter renders into a fixed-size buffer, the way a device without a
// console would, and keeps the result of the last call. Printf reports the
// untruncated length, like snprintf.
type BufferPrinter struct {
	buf   []byte
	last  *printf.BufferSink
	lastN int
}

func NewBufferPrinter(size int) *BufferPrinter {
	return &BufferPrinter{buf: make([]byte, size)}
}

func (b *BufferPrinter) Printf(format string, a ...any) (n int, err error) {
	b.last = printf.NewBufferSink(b.buf)
	b.lastN = render(format, a, b.last)
	return b.lastN, nil
}

// Last returns the characters stored by the last Printf call.
func (b *BufferPrinter) Last() string {
	if b.last == nil {
		return ""
	}
	return b.last.String()
}

// Truncated reports whether the last Printf call did not fit.
func (b *BufferPrinter) Truncated() bool {
	return b.last != nil && b.lastN > b.last.Len()
}

// Cap returns the buffer capacity, terminator included.
func (b *BufferPrinter) Cap() int { return len(b.buf) }

func render(format string, a []any, sink printf.Sink) int {
	args := printf.NewArgs(format, a)
	n := printf.Run(printf.Join(args, sink))
	if args.Used() < args.Len() {
		logrus.Debugf("%d of %d arguments not used by %q", args.Len()-args.Used(), args.Len(), format)
	}
	return int(n)
}
