package main

import (
	"os"

	"github.com/keskad/tinyprintf/pkgs/app"
	"github.com/keskad/tinyprintf/pkgs/cli"
)

func main() {
	printfApp := &app.PrintfApp{}
	if err := cli.NewRootCommand(printfApp).Execute(); err != nil {
		os.Exit(1)
	}
}
