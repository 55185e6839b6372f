package inspect

import (
	"strings"

	"github.com/mitchellh/cli"
	"pathname/internal/config"
)

// URICommand converts file URIs into pathnames
type URICommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of uri command
func (c *URICommand) Synopsis() string {
	return "Convert file: URIs into paths"
}

// Help returns information about the `uri` command
func (c *URICommand) Help() string {
	helpText := `
Usage: pathname uri <file-uri>...

  Convert each absolute, hierarchical file: URI without authority,
  query or fragment into a path, e.g. file:///tmp/x.
`
	return strings.TrimSpace(helpText)
}

// Run converts every argument
func (c *URICommand) Run(args []string) int {
	if len(args) == 0 {
		return usageError(c.Ui, "at least one URI is required", c.Help())
	}
	reports := make([]Report, 0, len(args))
	for _, arg := range args {
		p, err := c.Config.Factory.FromURIString(arg)
		report := newReport(arg, p, err)
		c.Config.Logger.Debug("uri", "input", arg, "path", report.Path, "error", report.Error)
		reports = append(reports, report)
	}
	return printReports(c.Config, c.Ui, reports)
}
