package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"pathname/internal/config"
	"pathname/internal/inspect"
	"pathname/internal/ui"
)

var pathnameVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	coloredUi := ui.Default()

	// Parse and validate cmd line flags and env vars
	cf, args, err := config.ParseAndValidate(args, os.Stderr)
	if err != nil {
		coloredUi.Error(ui.Error(err.Error()))
		return 1
	}

	c := cli.NewCLI("pathname", pathnameVersion)
	c.Args = args
	c.HelpWriter = os.Stdout
	c.ErrorWriter = os.Stderr
	c.Commands = commands(cf, coloredUi)

	exitCode, err := c.Run()
	if err != nil {
		coloredUi.Error(ui.Error(fmt.Sprintf("%v", err)))
	}
	return exitCode
}

func commands(cf *config.Config, u cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"normalize": func() (cli.Command, error) {
			return &inspect.NormalizeCommand{Config: cf, Ui: u}, nil
		},
		"resolve": func() (cli.Command, error) {
			return &inspect.ResolveCommand{Config: cf, Ui: u}, nil
		},
		"uri": func() (cli.Command, error) {
			return &inspect.URICommand{Config: cf, Ui: u}, nil
		},
		"list": func() (cli.Command, error) {
			return &inspect.ListCommand{Config: cf, Ui: u}, nil
		},
		"batch": func() (cli.Command, error) {
			return &inspect.BatchCommand{Config: cf, Ui: u}, nil
		},
		"save-config": func() (cli.Command, error) {
			return &inspect.SaveConfigCommand{Config: cf, Ui: u}, nil
		},
	}
}
