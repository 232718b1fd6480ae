package cli

import (
	"github.com/spf13/cobra"

	"github.com/keskad/tinyprintf/pkgs/app"
)

func NewPrintfCommand(app *app.PrintfApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "printf FORMAT [ARG...]",
		Short: "Render a format string through the configured output",
		Long: `Render a format string through the configured output (console, buffer or udp).

Backslash escapes in FORMAT are expanded. Each ARG is converted to what the
matching directive reads: integers take 0x, 0o and 0b forms, %c takes a letter
or a code, %b takes true/false.

Examples:
  tinyprintf printf 'speed=%05d\n' -- -42
  tinyprintf printf '%s: %.2f %b' loco 1.5 true`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := initialize(app); err != nil {
				return err
			}
			return app.PrintAction(unescape(args[0]), args[1:])
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	return command
}

func NewFormatCommand(app *app.PrintfApp) *cobra.Command {
	type FormatArgs struct {
		Size int
	}

	cmdArgs := FormatArgs{}
	command := &cobra.Command{
		Use:   "format FORMAT [ARG...]",
		Short: "Render into a bounded buffer and report what was stored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := initialize(app); err != nil {
				return err
			}
			return app.FormatAction(unescape(args[0]), args[1:], cmdArgs.Size)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().IntVarP(&cmdArgs.Size, "size", "s", 16, "Buffer capacity in bytes, terminator included")

	return command
}

func NewInspectCommand(app *app.PrintfApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "inspect FORMAT",
		Short: "List the directives of a format string and the arguments it reads",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := initialize(app); err != nil {
				return err
			}
			return app.InspectAction(unescape(args[0]))
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	return command
}
