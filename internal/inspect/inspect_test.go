package inspect

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pathname/internal/config"
	"pathname/internal/pathname"
	"pathname/internal/pathrules"
)

func testConfig(rules pathrules.Rules, output string) *config.Config {
	return &config.Config{
		Logger:  hclog.NewNullLogger(),
		Rules:   rules,
		Factory: pathname.NewFactory(rules),
		Output:  output,
	}
}

func TestNormalizeCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &NormalizeCommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}

	code := cmd.Run([]string{"/a//b/./c", "rel//x/"})
	assert.Equal(t, 0, code)
	out := ui.OutputWriter.String()
	assert.Contains(t, out, "/a/b/./c")
	assert.Contains(t, out, "prefix=1 absolute=true")
	assert.Contains(t, out, "rel/x")
	assert.Contains(t, out, "prefix=0 absolute=false")
}

func TestNormalizeCommandJSON(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &NormalizeCommand{Config: testConfig(pathrules.Windows, config.OutputJSON), Ui: ui}

	code := cmd.Run([]string{"c:/Users//me/", "x\x00y"})
	assert.Equal(t, 0, code)

	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, `c:\Users\me`, reports[0].Path)
	assert.Equal(t, 3, reports[0].PrefixLength)
	assert.True(t, reports[0].Absolute)
	assert.False(t, reports[0].Invalid)
	assert.True(t, reports[1].Invalid)
}

func TestNormalizeCommandUsage(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &NormalizeCommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}
	assert.Equal(t, 1, cmd.Run(nil))
	assert.Contains(t, ui.ErrorWriter.String(), "Usage: pathname normalize")
}

func TestResolveCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &ResolveCommand{Config: testConfig(pathrules.Unix, config.OutputJSON), Ui: ui}

	assert.Equal(t, 0, cmd.Run([]string{"/home/user", "docs"}))
	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "/home/user/docs", reports[0].Path)
	assert.Equal(t, 1, reports[0].PrefixLength)

	ui = cli.NewMockUi()
	cmd.Ui = ui
	assert.Equal(t, 1, cmd.Run([]string{"/home/user"}))
	var failures []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &failures))
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Error, pathname.ReasonChildAbsent)
}

func TestURICommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &URICommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}

	assert.Equal(t, 0, cmd.Run([]string{"file:///tmp/x"}))
	assert.Contains(t, ui.OutputWriter.String(), "/tmp/x")

	ui = cli.NewMockUi()
	cmd.Ui = ui
	assert.Equal(t, 1, cmd.Run([]string{"file:///tmp/x", "file://host/x"}))
	assert.Contains(t, ui.OutputWriter.String(), "/tmp/x")
	assert.Contains(t, ui.ErrorWriter.String(), pathname.ReasonURIHasAuthority)
}

func TestListCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &ListCommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}

	assert.Equal(t, 0, cmd.Run([]string{"--unique", "--join", "/usr/bin:/usr//bin/::/bin"}))
	assert.Equal(t, "/usr/bin:/bin\n", ui.OutputWriter.String())

	ui = cli.NewMockUi()
	cmd.Ui = ui
	assert.Equal(t, 0, cmd.Run([]string{"/usr/bin:/usr//bin/"}))
	assert.Contains(t, ui.OutputWriter.String(), "/usr/bin")

	assert.Equal(t, 1, cmd.Run([]string{"--bogus", "a"}))
	assert.Equal(t, 1, cmd.Run(nil))
}

func TestBatchCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &BatchCommand{Config: testConfig(pathrules.Unix, config.OutputJSON), Ui: ui}

	code := cmd.Run([]string{filepath.Join("testdata", "manifest.yaml")})
	assert.Equal(t, 1, code)

	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &reports))
	require.Len(t, reports, 6)

	byName := map[string]Report{}
	for _, r := range reports {
		byName[r.Name] = r
	}
	assert.Equal(t, "/a/b/./c", byName["scenario-a"].Path)
	assert.Equal(t, 1, byName["scenario-a"].PrefixLength)
	assert.Equal(t, "/home/user/docs", byName["scenario-b"].Path)
	assert.Equal(t, "/tmp/x", byName["scenario-c"].Path)
	assert.Contains(t, byName["absent-child"].Error, pathname.ReasonChildAbsent)
	assert.Equal(t, pathname.ErrNullArgument.Error(), byName["absent-path"].Error)
	assert.Contains(t, byName["http-uri"].Error, pathname.ReasonURINotFileScheme)

	assert.Equal(t, "scenario-a", reports[0].Name)
	assert.Equal(t, "http-uri", reports[5].Name)
}

func TestBatchCommandOnly(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &BatchCommand{Config: testConfig(pathrules.Unix, config.OutputJSON), Ui: ui}

	code := cmd.Run([]string{"--only=scenario-*", filepath.Join("testdata", "manifest.yaml")})
	assert.Equal(t, 0, code)

	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &reports))
	assert.Len(t, reports, 3)
}

func TestBatchCommandMissingManifest(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &BatchCommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}
	assert.Equal(t, 1, cmd.Run([]string{filepath.Join(t.TempDir(), "missing.yaml")}))
	assert.Contains(t, ui.ErrorWriter.String(), "reading")
}

func TestBatchCommandJSONManifest(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &BatchCommand{Config: testConfig(pathrules.Windows, config.OutputJSON), Ui: ui}

	code := cmd.Run([]string{filepath.Join("testdata", "manifest.json")})
	assert.Equal(t, 0, code, ui.ErrorWriter.String())

	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &reports))
	require.Len(t, reports, 3)
	assert.Equal(t, `c:\Users\x`, reports[0].Path)
	assert.Equal(t, 3, reports[0].PrefixLength)
	assert.Equal(t, `c:foo`, reports[2].Path)
	assert.Equal(t, 2, reports[2].PrefixLength)
}

func TestSaveConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := testConfig(pathrules.Windows, config.OutputJSON)
	c.ExpandHome = true
	ui := cli.NewMockUi()
	cmd := &SaveConfigCommand{Config: c, Ui: ui}

	code := cmd.Run([]string{"--file=" + path})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), path)

	saved, err := config.ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, &config.UserConfig{Platform: pathrules.WindowsName, Output: config.OutputJSON, ExpandHome: true}, saved)
}

func TestSaveConfigCommandUsage(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &SaveConfigCommand{Config: testConfig(pathrules.Unix, config.OutputText), Ui: ui}
	assert.Equal(t, 1, cmd.Run([]string{"extra"}))

	missingDir := filepath.Join(t.TempDir(), "missing", "config.yaml")
	assert.Equal(t, 1, cmd.Run([]string{"--file=" + missingDir}))
	assert.Contains(t, ui.ErrorWriter.String(), "saving")
}

func TestCaseEvaluateRejectsAmbiguousCases(t *testing.T) {
	f := pathname.NewFactory(pathrules.Unix)
	s := func(v string) *string { return &v }

	cases := []struct {
		Name   string
		Case   Case
		ErrMsg string
	}{
		{"path and uri", Case{Path: s("/a"), URI: s("file:///b")}, "path, uri"},
		{"path and parent", Case{Path: s("/a"), Parent: s("/b")}, "path, parent"},
		{"all three", Case{Path: s("/a"), Parent: s("/b"), URI: s("file:///c")}, "path, parent, uri"},
		{"child without parent", Case{Path: s("/a"), Child: s("b")}, "child without parent"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, err := tc.Case.Evaluate(f)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.ErrMsg)
		})
	}
}

func TestEvaluateAllRecordsFailuresPerCase(t *testing.T) {
	f := pathname.NewFactory(pathrules.Unix)
	s := func(v string) *string { return &v }

	reports := EvaluateAll(f, []Case{
		{Name: "ok", Path: s("/a//b")},
		{Name: "ambiguous", Path: s("/a"), URI: s("file:///b")},
		{Name: "also-ok", URI: s("file:///tmp/x")},
	})

	require.Len(t, reports, 3)
	assert.Equal(t, "/a/b", reports[0].Path)
	assert.Empty(t, reports[0].Error)
	assert.Equal(t, "ambiguous", reports[1].Name)
	assert.Contains(t, reports[1].Error, "more than one")
	assert.Empty(t, reports[1].Path)
	assert.Equal(t, "/tmp/x", reports[2].Path)
	assert.True(t, failed(reports))
}
