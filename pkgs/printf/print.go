package printf

import (
	"io"
	"os"
)

// Printf formats to standard output and returns the number of characters
// written.
func Printf(format string, args ...any) int32 {
	return Vprintf(format, args)
}

func Vprintf(format string, args []any) int32 {
	n, _ := Vfprintf(os.Stdout, format, args)
	return n
}

// Fprintf formats to w. The error is the first write error, if any.
func Fprintf(w io.Writer, format string, args ...any) (int32, error) {
	return Vfprintf(w, format, args)
}

func Vfprintf(w io.Writer, format string, args []any) (int32, error) {
	sink := NewWriterSink(w)
	n := Run(Join(NewArgs(format, args), sink))
	return n, sink.Err()
}

// Format formats into buf, capacity len(buf), and zero-terminates the result.
// It returns the length the output would have had without the bound; the
// stored text is truncated to len(buf)-1 bytes. buf must not be empty.
func Format(buf []byte, format string, args ...any) int32 {
	return Vformat(buf, format, args)
}

func Vformat(buf []byte, format string, args []any) int32 {
	return Run(Join(NewArgs(format, args), NewBufferSink(buf)))
}

// Sprintf formats into a new string.
func Sprintf(format string, args ...any) string {
	return Vsprintf(format, args)
}

func Vsprintf(format string, args []any) string {
	sink := &builderSink{}
	Run(Join(NewArgs(format, args), sink))
	return sink.b.String()
}
