package inspect

import (
	"strings"

	"github.com/mitchellh/cli"
	"pathname/internal/config"
)

// NormalizeCommand builds a pathname from each argument
type NormalizeCommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of normalize command
func (c *NormalizeCommand) Synopsis() string {
	return "Normalize paths and report their prefix length"
}

// Help returns information about the `normalize` command
func (c *NormalizeCommand) Help() string {
	helpText := `
Usage: pathname normalize <path>...

  Normalize each path with the selected platform rules and print the
  result, its prefix length and whether it contains a NUL byte.
`
	return strings.TrimSpace(helpText)
}

// Run normalizes every argument
func (c *NormalizeCommand) Run(args []string) int {
	if len(args) == 0 {
		return usageError(c.Ui, "at least one path is required", c.Help())
	}
	reports := make([]Report, 0, len(args))
	for _, arg := range args {
		input, err := expand(c.Config, arg)
		if err != nil {
			reports = append(reports, Report{Input: arg, Error: err.Error()})
			continue
		}
		p, err := c.Config.Factory.FromPath(&input)
		report := newReport(arg, p, err)
		c.Config.Logger.Debug("normalize", "input", arg, "path", report.Path)
		reports = append(reports, report)
	}
	return printReports(c.Config, c.Ui, reports)
}
