package inspect

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pathname/internal/config"
	"pathname/internal/pathname"
	"pathname/internal/ui"
	"pathname/internal/util"
)

// Manifest is the document read by the batch command, in YAML or JSON.
//
//   cases:
//     - name: home-docs
//       parent: /home/user
//       child: docs
//     - name: tmp
//       uri: file:///tmp/x
//     - name: plain
//       path: /a//b
type Manifest struct {
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is one construction request. Exactly one of URI, Parent or Path must
// be set; Child is only allowed together with Parent.
type Case struct {
	Name   string  `yaml:"name" json:"name"`
	Path   *string `yaml:"path" json:"path"`
	Parent *string `yaml:"parent" json:"parent"`
	Child  *string `yaml:"child" json:"child"`
	URI    *string `yaml:"uri" json:"uri"`
}

func (tc Case) input() string {
	switch {
	case tc.URI != nil:
		return *tc.URI
	case tc.Parent != nil && tc.Child != nil:
		return *tc.Parent + " + " + *tc.Child
	case tc.Parent != nil:
		return *tc.Parent
	case tc.Path != nil:
		return *tc.Path
	}
	return ""
}

// Evaluate builds the pathname the case describes.
func (tc Case) Evaluate(f *pathname.Factory) (*pathname.Pathname, error) {
	if err := tc.validate(); err != nil {
		return nil, err
	}
	switch {
	case tc.URI != nil:
		return f.FromURIString(*tc.URI)
	case tc.Parent != nil:
		return f.FromParentChild(*tc.Parent, tc.Child)
	}
	return f.FromPath(tc.Path)
}

func (tc Case) validate() error {
	var set []string
	if tc.Path != nil {
		set = append(set, "path")
	}
	if tc.Parent != nil {
		set = append(set, "parent")
	}
	if tc.URI != nil {
		set = append(set, "uri")
	}
	if len(set) > 1 {
		return errors.Errorf("case sets more than one of path, parent and uri: %v", strings.Join(set, ", "))
	}
	if tc.Child != nil && tc.Parent == nil {
		return errors.New("case sets child without parent")
	}
	return nil
}

// ReadManifest reads a batch manifest from path. Files ending in .json are
// read as JSON, everything else as YAML.
func ReadManifest(path string) (*Manifest, error) {
	var m Manifest
	if err := util.ReadFileStructured(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// BatchCommand evaluates a manifest of construction requests
type BatchCommand struct {
	Config *config.Config
	Ui     cli.Ui
}

// Synopsis of batch command
func (c *BatchCommand) Synopsis() string {
	return "Evaluate a manifest of paths, parent/child pairs and URIs"
}

// Help returns information about the `batch` command
func (c *BatchCommand) Help() string {
	helpText := `
Usage: pathname batch [options] <manifest.yaml|manifest.json>

  Build a pathname for every case in the manifest. Each case has a name and
  one of: path, parent (with optional child), or uri.

Options:
  --only=<glob>   Only evaluate cases whose name matches the glob.
`
	return strings.TrimSpace(helpText)
}

// Run evaluates the manifest
func (c *BatchCommand) Run(args []string) int {
	var only glob.Glob
	var positional []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--only="):
			g, err := glob.Compile(arg[len("--only="):])
			if err != nil {
				return usageError(c.Ui, errors.Wrap(err, "invalid --only pattern").Error(), c.Help())
			}
			only = g
		case strings.HasPrefix(arg, "--"):
			return usageError(c.Ui, "unknown option "+arg, c.Help())
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != 1 {
		return usageError(c.Ui, "expected exactly one manifest", c.Help())
	}

	m, err := ReadManifest(positional[0])
	if err != nil {
		c.Ui.Error(ui.Error(err.Error()))
		return 1
	}

	var selected []Case
	for _, tc := range m.Cases {
		if only == nil || only.Match(tc.Name) {
			selected = append(selected, tc)
		}
	}
	c.Config.Logger.Debug("batch", "manifest", positional[0], "cases", len(m.Cases), "selected", len(selected))

	return printReports(c.Config, c.Ui, EvaluateAll(c.Config.Factory, selected))
}

// EvaluateAll evaluates cases concurrently. Reports come back in case order
// and a failing case is recorded in its own report.
func EvaluateAll(f *pathname.Factory, cases []Case) []Report {
	reports := make([]Report, len(cases))
	var g errgroup.Group
	for index := range cases {
		index := index
		g.Go(func() error {
			tc := cases[index]
			p, err := tc.Evaluate(f)
			report := newReport(tc.input(), p, err)
			report.Name = tc.Name
			reports[index] = report
			return nil
		})
	}
	_ = g.Wait()
	return reports
}
