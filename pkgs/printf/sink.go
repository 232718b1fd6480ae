package printf

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrZeroCapacity is the panic value of NewBufferSink for an empty buffer.
var ErrZeroCapacity = errors.New("printf: buffer capacity must be at least 1")

// WriterSink sends output to an io.Writer, the console mode. Output is
// buffered and flushed on Finalize; the first write error is kept and later
// characters are dropped.
type WriterSink struct {
	w   *bufio.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) PutChar(c byte) {
	if s.err != nil {
		return
	}
	s.err = s.w.WriteByte(c)
}

func (s *WriterSink) Finalize() {
	if s.err == nil {
		s.err = s.w.Flush()
	}
}

// Err returns the first error seen while writing.
func (s *WriterSink) Err() error { return s.err }

// BufferSink writes into a fixed buffer, the format-into-string mode. At most
// len(buf)-1 characters are stored; Finalize always terminates the data with
// a zero byte. Nothing is ever written past len(buf).
type BufferSink struct {
	buf []byte
	n   int
}

// NewBufferSink panics with ErrZeroCapacity when buf is empty.
func NewBufferSink(buf []byte) *BufferSink {
	if len(buf) == 0 {
		panic(ErrZeroCapacity)
	}
	return &BufferSink{buf: buf}
}

func (s *BufferSink) PutChar(c byte) {
	if s.n < len(s.buf)-1 {
		s.buf[s.n] = c
		s.n++
	}
}

func (s *BufferSink) Finalize() { s.buf[s.n] = 0 }

// Len returns the number of characters stored, excluding the terminator.
func (s *BufferSink) Len() int { return s.n }

// Bytes returns the stored characters, excluding the terminator.
func (s *BufferSink) Bytes() []byte { return s.buf[:s.n] }

func (s *BufferSink) String() string { return string(s.buf[:s.n]) }

// builderSink grows without bound; backs Sprintf.
type builderSink struct {
	b strings.Builder
}

func (s *builderSink) PutChar(c byte) { s.b.WriteByte(c) }
func (s *builderSink) Finalize()      {}

// discardSink drops everything.
type discardSink struct{}

func (discardSink) PutChar(byte) {}
func (discardSink) Finalize()    {}
