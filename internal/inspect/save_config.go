package inspect

import (
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"pathname/internal/config"
	"pathname/internal/ui"
)

// SaveConfigCommand writes the current settings to the user config file so
// later invocations pick them up without flags.
type SaveConfigCommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of save-config command
func (c *SaveConfigCommand) Synopsis() string {
	return "Save the current platform and output settings as user defaults"
}

// Help returns information about the `save-config` command
func (c *SaveConfigCommand) Help() string {
	helpText := `
Usage: pathname save-config [options]

  Write the effective platform, output format and home expansion setting
  to the user config file ($XDG_CONFIG_HOME/pathname/config.yaml). Combine
  with --platform=<name>, --json or --expand-home to change them.

Options:
  --file=<path>   Write to this file instead.
`
	return strings.TrimSpace(helpText)
}

// Run writes the config file
func (c *SaveConfigCommand) Run(args []string) int {
	path := ""
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--file="):
			path = arg[len("--file="):]
		default:
			return usageError(c.Ui, "unexpected argument "+arg, c.Help())
		}
	}
	if path == "" {
		userPath, err := config.UserConfigFilePath()
		if err != nil {
			c.logError(errors.Wrap(err, "locating user config file"))
			return 1
		}
		path = userPath
	}

	if err := config.WriteConfigFile(path, c.Config.UserConfig()); err != nil {
		c.logError(errors.Wrapf(err, "saving %v", path))
		return 1
	}
	c.Config.Logger.Debug("saved user config", "path", path, "platform", c.Config.Rules.Name())
	c.Ui.Info(fmt.Sprintf("%s %s", ui.Bold("Saved"), path))
	return 0
}

// logError logs an error and outputs it to the UI.
func (c *SaveConfigCommand) logError(err error) {
	c.Config.Logger.Error("error", "err", err.Error())
	c.Ui.Error(ui.Error(err.Error()))
}
