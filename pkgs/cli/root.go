package cli

import (
	"github.com/spf13/cobra"

	"github.com/keskad/tinyprintf/pkgs/app"
)

func NewRootCommand(app *app.PrintfApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "tinyprintf",
		Short: "Small-footprint printf engine for devices without a console",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(NewPrintfCommand(app))
	command.AddCommand(NewFormatCommand(app))
	command.AddCommand(NewInspectCommand(app))
	command.AddCommand(NewReplayCommand(app))
	command.AddCommand(NewListenCommand(app))

	return command
}
