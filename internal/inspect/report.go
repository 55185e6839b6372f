// Package inspect holds the pathname subcommands. Each command builds
// pathnames from its arguments with the configured rules and prints what the
// core made of them.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"pathname/internal/config"
	"pathname/internal/pathname"
	"pathname/internal/ui"
)

// Report describes one constructed pathname, or why construction failed.
type Report struct {
	Name         string `json:"name,omitempty"`
	Input        string `json:"input"`
	Path         string `json:"path"`
	PrefixLength int    `json:"prefixLength"`
	Absolute     bool   `json:"absolute"`
	Invalid      bool   `json:"invalid"`
	Error        string `json:"error,omitempty"`
}

func newReport(input string, p *pathname.Pathname, err error) Report {
	if err != nil {
		return Report{Input: input, Error: err.Error()}
	}
	return Report{
		Input:        input,
		Path:         p.Path(),
		PrefixLength: p.PrefixLength(),
		Absolute:     p.IsAbsolute(),
		Invalid:      p.IsInvalid(),
	}
}

// failed reports whether any report carries an error
func failed(reports []Report) bool {
	for _, r := range reports {
		if r.Error != "" {
			return true
		}
	}
	return false
}

func formatText(r Report) string {
	var b strings.Builder
	if r.Name != "" {
		b.WriteString(ui.Bold(r.Name))
		b.WriteString(" ")
	}
	if r.Error != "" {
		b.WriteString(ui.Error(fmt.Sprintf("%q: %v", r.Input, r.Error)))
		return b.String()
	}
	fmt.Fprintf(&b, "%s\t%s", r.Path, ui.Dim(fmt.Sprintf("prefix=%d absolute=%t", r.PrefixLength, r.Absolute)))
	if r.Invalid {
		b.WriteString("\t")
		b.WriteString(ui.InvalidMarker)
	}
	return b.String()
}

// printReports writes reports to the ui in the configured format and returns
// the exit code.
func printReports(c *config.Config, u cli.Ui, reports []Report) int {
	if c.Output == config.OutputJSON {
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			u.Error(ui.Error(errors.Wrap(err, "marshaling").Error()))
			return 1
		}
		u.Output(string(b))
	} else {
		for _, r := range reports {
			if r.Error != "" {
				u.Error(formatText(r))
			} else {
				u.Output(formatText(r))
			}
		}
	}
	if failed(reports) {
		return 1
	}
	return 0
}

// expand applies the configured home directory expansion to a path argument.
func expand(c *config.Config, path string) (string, error) {
	if !c.ExpandHome {
		return path, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %v", path)
	}
	return expanded, nil
}

// usageError prints the help text after a usage problem
func usageError(u cli.Ui, msg string, help string) int {
	u.Error(ui.Error(msg))
	u.Error(help)
	return 1
}
