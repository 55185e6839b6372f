package inspect

import (
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/mitchellh/cli"
	"pathname/internal/config"
	"pathname/internal/pathname"
	"pathname/internal/ui"
)

// ListCommand splits a search path into pathnames
type ListCommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of list command
func (c *ListCommand) Synopsis() string {
	return "Split a search path such as $PATH into normalized entries"
}

// Help returns information about the `list` command
func (c *ListCommand) Help() string {
	helpText := `
Usage: pathname list [options] <search-path>

  Split a search path on the platform's path list separator and normalize
  each entry. Empty entries are skipped.

Options:
  --unique    Drop entries whose normalized path was already listed.
  --join      Print the normalized search path instead of one entry per line.
`
	return strings.TrimSpace(helpText)
}

// Run splits the search path
func (c *ListCommand) Run(args []string) int {
	unique := false
	join := false
	var positional []string
	for _, arg := range args {
		switch arg {
		case "--unique":
			unique = true
		case "--join":
			join = true
		default:
			if strings.HasPrefix(arg, "--") {
				return usageError(c.Ui, "unknown option "+arg, c.Help())
			}
			positional = append(positional, arg)
		}
	}
	if len(positional) != 1 {
		return usageError(c.Ui, "expected exactly one search path", c.Help())
	}

	paths := c.Config.Factory.SplitList(positional[0])
	if unique {
		paths = dedupe(paths)
	}
	c.Config.Logger.Debug("list", "entries", len(paths), "unique", unique)

	if join {
		c.Ui.Output(c.Config.Factory.JoinList(paths))
		return 0
	}
	reports := make([]Report, len(paths))
	for index, p := range paths {
		reports[index] = newReport(p.Path(), p, nil)
	}
	if len(reports) == 0 {
		c.Ui.Warn(ui.Warn("search path has no entries"))
	}
	return printReports(c.Config, c.Ui, reports)
}

func dedupe(paths []*pathname.Pathname) []*pathname.Pathname {
	seen := mapset.NewThreadUnsafeSet()
	out := paths[:0:0]
	for _, p := range paths {
		if seen.Add(p.Path()) {
			out = append(out, p)
		}
	}
	return out
}
