package util

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ReadFileJSON reads json from the given path.
func ReadFileJSON(path string, v interface{}) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading")
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "parsing %v", path)
	}
	return nil
}

// ReadFileYAML reads yaml from the given path. Unknown keys are an error.
func ReadFileYAML(path string, v interface{}) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading")
	}
	if err := yaml.UnmarshalStrict(b, v); err != nil {
		return errors.Wrapf(err, "parsing %v", path)
	}
	return nil
}

// ReadFileStructured picks json or yaml decoding from the file extension.
// Anything other than .json is read as yaml.
func ReadFileStructured(path string, v interface{}) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadFileJSON(path, v)
	}
	return ReadFileYAML(path, v)
}
