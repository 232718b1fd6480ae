package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keskad/tinyprintf/pkgs/app"
)

func NewReplayCommand(app *app.PrintfApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "replay IMAGE",
		Short: "Render a program memory image described in YAML",
		Long: `Render a program memory image described in YAML. The format string and
every string argument are laid out in memory and read by address, the way a
device reads them from flash.

Example image:
  format: "%s=%d (%.2f)\n"
  args:
    - str: speed
    - int: 42
    - float: 1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := initialize(app); err != nil {
				return err
			}
			return app.ReplayAction(args[0])
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	return command
}

func NewListenCommand(app *app.PrintfApp) *cobra.Command {
	type ListenArgs struct {
		Address string
		Port    uint16
	}

	cmdArgs := ListenArgs{}
	command := &cobra.Command{
		Use:   "listen",
		Short: "Print lines sent by the udp output",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := initialize(app); err != nil {
				return err
			}
			if !command.Flags().Changed("port") {
				cmdArgs.Port = app.Config.Output.Port
			}
			// every datagram is a complete line
			app.Newline = true

			ctx, stop := signal.NotifyContext(command.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.ListenAction(ctx, cmdArgs.Address, cmdArgs.Port)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().StringVarP(&cmdArgs.Address, "address", "a", "0.0.0.0", "Address to listen on")
	command.Flags().Uint16VarP(&cmdArgs.Port, "port", "p", 0, "Port to listen on, output.port when not set")

	return command
}
