package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/config"
	"github.com/keskad/tinyprintf/pkgs/output"
	"github.com/keskad/tinyprintf/pkgs/remote"
)

type PrintfApp struct {
	Config *config.Configuration
	P      output.Printer

	// Out receives reports and console output, stdout when nil
	Out io.Writer

	// runtime parameters
	Debug bool

	// Newline appends a line break after console output
	Newline bool
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *PrintfApp) Initialize() error {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}

	// --debug wins over the configured level
	if !app.Debug {
		level, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("cannot initialize app: %s", err)
		}
		logrus.SetLevel(level)
	}
	return nil
}

func (app *PrintfApp) out() io.Writer {
	if app.Out == nil {
		return os.Stdout
	}
	return app.Out
}

// initializePrinter picks the printer for the configured output type. A
// printer set up front is kept.
func (app *PrintfApp) initializePrinter() error {
	if app.P != nil {
		return nil
	}

	logrus.Debugf("Initializing %s output", app.Config.Output.Type)
	switch app.Config.Output.Type {
	case config.OutputConsole:
		app.P = output.ConsolePrinter{W: app.out()}
	case config.OutputBuffer:
		app.P = output.NewBufferPrinter(app.Config.Output.BufferSize)
	case config.OutputUDP:
		p, err := remote.Dial(app.Config.Output.Address, app.Config.Output.Port,
			remote.BufferSize(app.Config.Output.BufferSize))
		if err != nil {
			return fmt.Errorf("cannot initialize output: %s", err)
		}
		app.P = p
	default:
		return fmt.Errorf("unknown output type '%s'", app.Config.Output.Type)
	}
	return nil
}

// CleanUp releases the printer connection, if any.
func (app *PrintfApp) CleanUp() error {
	if c, ok := app.P.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
