package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/output"
	"github.com/keskad/tinyprintf/pkgs/printf"
	"github.com/keskad/tinyprintf/pkgs/syntax"
)

// PrintAction renders format with the command line words in raw through the
// configured printer.
func (app *PrintfApp) PrintAction(format string, raw []string) (err error) {
	args, parseErr := syntax.ParseArgs(printf.Arguments(format), raw)
	if parseErr != nil {
		return parseErr
	}

	if err := app.initializePrinter(); err != nil {
		return err
	}
	defer func() {
		if closeErr := app.CleanUp(); err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close output: %w", closeErr)
		}
	}()

	n, err := app.P.Printf(format, args...)
	if err != nil {
		return fmt.Errorf("cannot print: %w", err)
	}
	logrus.Debugf("printed %d characters", n)

	// a buffer has no console of its own, show what it holds
	echoed := false
	switch p := app.P.(type) {
	case output.ConsolePrinter:
		echoed = true
	case *output.BufferPrinter:
		if _, err := printf.Fprintf(app.out(), "%s", p.Last()); err != nil {
			return err
		}
		if p.Truncated() {
			logrus.Warnf("output truncated to %d of %d characters", len(p.Last()), n)
		}
		echoed = true
	}

	if echoed && app.Newline {
		_, err = printf.Fprintf(app.out(), "\n")
	}
	return err
}

// FormatAction renders into a buffer of size bytes, terminator included, and
// reports what was stored next to the full length.
func (app *PrintfApp) FormatAction(format string, raw []string, size int) error {
	if size < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d", size)
	}
	args, parseErr := syntax.ParseArgs(printf.Arguments(format), raw)
	if parseErr != nil {
		return parseErr
	}

	bp := output.NewBufferPrinter(size)
	n, _ := bp.Printf(format, args...)

	_, err := printf.Fprintf(app.out(), "buffer    : [%s]\nstored    : %d of %d\ncount     : %d\ntruncated : %b\n",
		bp.Last(), len(bp.Last()), bp.Cap()-1, n, bp.Truncated())
	return err
}
