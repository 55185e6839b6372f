package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"pathname/internal/pathname"
	"pathname/internal/pathrules"
	"pathname/internal/ui"
)

const (
	// EnvLogLevel is the environment log level
	EnvLogLevel = "PATHNAME_LOG_LEVEL"
)

// Output formats understood by the commands.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is a struct that contains user inputs and our logger
type Config struct {
	Logger hclog.Logger

	// Rules every command builds pathnames with
	Rules pathrules.Rules
	// Factory bound to Rules
	Factory *pathname.Factory
	// Output is OutputText or OutputJSON
	Output string
	// ExpandHome expands a leading ~ in path arguments
	ExpandHome bool
}

// ParseAndValidate parses the global flags and env vars and returns the
// config together with the arguments left for the subcommand. Precedence is
// flags > env > config file > default.
func ParseAndValidate(args []string, logOutput io.Writer) (*Config, []string, error) {
	userConfig, err := ReadUserConfigFile()
	if err != nil && !os.IsNotExist(err) {
		return nil, nil, err
	}
	return parse(args, userConfig, logOutput)
}

func parse(args []string, partialConfig *UserConfig, logOutput io.Writer) (*Config, []string, error) {
	if err := envconfig.Process("pathname", partialConfig); err != nil {
		return nil, nil, fmt.Errorf("invalid environment variable: %w", err)
	}

	// Determine our log level if we have any. First override we check if env var
	level := hclog.NoLevel
	if v := os.Getenv(EnvLogLevel); v != "" {
		level = hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			return nil, nil, fmt.Errorf("%s value %q is not a valid log level", EnvLogLevel, v)
		}
	}

	// Process arguments looking for `-v` flags to control the log level.
	// This overrides whatever the env var set.
	var outArgs []string
	for _, arg := range args {
		if len(arg) != 0 && arg[0] != '-' {
			outArgs = append(outArgs, arg)
			continue
		}
		switch {
		case arg == "-v":
			if level == hclog.NoLevel || level > hclog.Info {
				level = hclog.Info
			}
		case arg == "-vv":
			if level == hclog.NoLevel || level > hclog.Debug {
				level = hclog.Debug
			}
		case arg == "-vvv":
			if level == hclog.NoLevel || level > hclog.Trace {
				level = hclog.Trace
			}
		case strings.HasPrefix(arg, "--platform="):
			partialConfig.Platform = arg[len("--platform="):]
		case arg == "--json":
			partialConfig.Output = OutputJSON
		case arg == "--expand-home":
			partialConfig.ExpandHome = true
		default:
			outArgs = append(outArgs, arg)
		}
	}

	// Default output is nowhere unless we enable logging.
	var output io.Writer = ioutil.Discard
	color := hclog.ColorOff
	if level != hclog.NoLevel {
		output = logOutput
		if !ui.IsCI {
			color = hclog.AutoColor
		}
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pathname",
		Level:  level,
		Color:  color,
		Output: output,
	})

	factory := pathname.Host()
	if partialConfig.Platform != "" {
		selected, ok := pathrules.Lookup(partialConfig.Platform)
		if !ok {
			return nil, nil, fmt.Errorf("%q is not a known platform, expected %q or %q", partialConfig.Platform, pathrules.UnixName, pathrules.WindowsName)
		}
		factory = pathname.NewFactory(selected)
	}
	rules := factory.Rules()
	logger.Debug("selected path rules", "platform", rules.Name())

	outputFormat := partialConfig.Output
	switch outputFormat {
	case "":
		outputFormat = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, nil, fmt.Errorf("%q is not a valid output format, expected %q or %q", outputFormat, OutputText, OutputJSON)
	}

	c := &Config{
		Logger:     logger,
		Rules:      rules,
		Factory:    factory,
		Output:     outputFormat,
		ExpandHome: partialConfig.ExpandHome,
	}
	return c, outArgs, nil
}
