package app

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/memimage"
	"github.com/keskad/tinyprintf/pkgs/printf"
)

// ReplayAction loads a memory image description and renders it the way the
// device would, reading format and strings out of program memory.
func (app *PrintfApp) ReplayAction(imageFile string) error {
	f, err := os.Open(imageFile)
	if err != nil {
		return fmt.Errorf("cannot open image file %q: %w", imageFile, err)
	}
	defer f.Close()

	img, err := memimage.Load(f)
	if err != nil {
		return fmt.Errorf("cannot load image file %q: %w", imageFile, err)
	}

	sink := printf.NewWriterSink(app.out())
	n := img.Run(sink)
	if sink.Err() != nil {
		return fmt.Errorf("cannot write output: %w", sink.Err())
	}
	logrus.Debugf("replayed %d characters", n)

	if app.Newline {
		_, err = printf.Fprintf(app.out(), "\n")
	}
	return err
}
