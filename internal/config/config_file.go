package config

import (
	"io/ioutil"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// UserConfig holds the per-user defaults read from the config file
type UserConfig struct {
	// Platform names the path rules to use instead of the host's
	Platform string `yaml:"platform,omitempty" envconfig:"platform"`
	// Output is "text" or "json"
	Output string `yaml:"output,omitempty" envconfig:"output"`
	// ExpandHome expands a leading ~ in path arguments
	ExpandHome bool `yaml:"expandHome,omitempty" envconfig:"expand_home"`
}

var userConfigRelPath = filepath.Join("pathname", "config.yaml")

// WriteConfigFile writes config file at a path
func WriteConfigFile(path string, config *UserConfig) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshaling")
	}
	return errors.Wrap(ioutil.WriteFile(path, b, 0644), "writing")
}

// UserConfigFilePath returns where the per-user config file lives, creating
// its directory.
func UserConfigFilePath() (string, error) {
	return xdg.ConfigFile(userConfigRelPath)
}

// UserConfig returns the settings of c in config file form.
func (c *Config) UserConfig() *UserConfig {
	return &UserConfig{
		Platform:   c.Rules.Name(),
		Output:     c.Output,
		ExpandHome: c.ExpandHome,
	}
}

// ReadConfigFile reads a config file at a path. The returned config is
// usable even when err is non-nil.
func ReadConfigFile(path string) (*UserConfig, error) {
	config := &UserConfig{}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(b, config); err != nil {
		return config, errors.Wrapf(err, "parsing %v", path)
	}
	return config, nil
}

// ReadUserConfigFile reads a user config file. A missing file is not an
// error.
func ReadUserConfigFile() (*UserConfig, error) {
	path, err := xdg.SearchConfigFile(userConfigRelPath)
	if err != nil {
		return &UserConfig{}, nil
	}
	return ReadConfigFile(path)
}
