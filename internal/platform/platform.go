// Package platform provides the filesystem-identity of the running process:
// the single set of path rules every pathname in this process is built with.
package platform

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"pathname/internal/pathrules"
)

// Environment is the part of the process environment consulted when the host
// rules are selected. PATHNAME_PLATFORM forces a rule set regardless of GOOS.
type Environment struct {
	Platform string `envconfig:"platform"`
}

var (
	hostOnce  sync.Once
	hostRules pathrules.Rules
)

// Rules returns the rules for this process. They are selected on first use
// and never change afterwards.
func Rules() pathrules.Rules {
	hostOnce.Do(func() {
		rules, err := Select(runtime.GOOS, readEnvironment())
		if err != nil {
			// An unusable override must not leave the process without rules.
			rules = ForGOOS(runtime.GOOS)
		}
		hostRules = rules
	})
	return hostRules
}

func readEnvironment() Environment {
	var env Environment
	// Only a malformed variable can fail here, and Platform is a plain string.
	_ = envconfig.Process("pathname", &env)
	return env
}

// Select picks the rules named by env.Platform, falling back to the rules for goos.
func Select(goos string, env Environment) (pathrules.Rules, error) {
	if env.Platform == "" {
		return ForGOOS(goos), nil
	}
	rules, ok := pathrules.Lookup(env.Platform)
	if !ok {
		return nil, fmt.Errorf("unknown platform %q, expected %q or %q", env.Platform, pathrules.UnixName, pathrules.WindowsName)
	}
	return rules, nil
}

// ForGOOS maps a GOOS value onto its rule set.
func ForGOOS(goos string) pathrules.Rules {
	if goos == "windows" {
		return pathrules.Windows
	}
	return pathrules.Unix
}
