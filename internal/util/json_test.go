package util

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestReadFileStructured(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		File     string
		Contents string
	}{
		{"a.json", `{"name": "x", "count": 2}`},
		{"a.yaml", "name: x\ncount: 2\n"},
		{"a.yml", "name: x\ncount: 2\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.File)
		require.NoError(t, ioutil.WriteFile(path, []byte(tc.Contents), 0644))

		var got sample
		require.NoError(t, ReadFileStructured(path, &got), tc.File)
		assert.Equal(t, sample{Name: "x", Count: 2}, got, tc.File)
	}
}

func TestReadFileYAMLRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("name: x\nextra: 1\n"), 0644))

	var got sample
	assert.Error(t, ReadFileYAML(path, &got))
}

func TestReadFileMissing(t *testing.T) {
	var got sample
	err := ReadFileStructured(filepath.Join(t.TempDir(), "missing.json"), &got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
