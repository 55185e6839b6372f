package inspect

import (
	"strings"

	"github.com/mitchellh/cli"
	"pathname/internal/config"
)

// ResolveCommand resolves a child against a parent
type ResolveCommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of resolve command
func (c *ResolveCommand) Synopsis() string {
	return "Resolve a child path against a parent path"
}

// Help returns information about the `resolve` command
func (c *ResolveCommand) Help() string {
	helpText := `
Usage: pathname resolve <parent> [child]

  Resolve child against parent. An empty parent ("") stands for the
  platform's default parent. Omitting child is an error.
`
	return strings.TrimSpace(helpText)
}

// Run resolves the arguments
func (c *ResolveCommand) Run(args []string) int {
	if len(args) < 1 || len(args) > 2 {
		return usageError(c.Ui, "expected a parent and a child", c.Help())
	}
	parent, err := expand(c.Config, args[0])
	if err != nil {
		return printReports(c.Config, c.Ui, []Report{{Input: args[0], Error: err.Error()}})
	}
	var child *string
	input := parent
	if len(args) == 2 {
		child = &args[1]
		input = parent + " + " + args[1]
	}
	p, err := c.Config.Factory.FromParentChild(parent, child)
	report := newReport(input, p, err)
	c.Config.Logger.Debug("resolve", "parent", parent, "hasChild", child != nil, "path", report.Path)
	return printReports(c.Config, c.Ui, []Report{report})
}
