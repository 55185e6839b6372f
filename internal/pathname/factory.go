package pathname

import (
	"pathname/internal/pathrules"
	"pathname/internal/platform"
)

// Factory builds pathnames using one set of platform rules.
type Factory struct {
	rules pathrules.Rules
}

// NewFactory returns a Factory that builds pathnames with rules.
func NewFactory(rules pathrules.Rules) *Factory {
	return &Factory{rules: rules}
}

// Host returns a Factory for the rules of the running process.
func Host() *Factory {
	return NewFactory(platform.Rules())
}

// Rules returns the rules this Factory builds with.
func (f *Factory) Rules() pathrules.Rules {
	return f.rules
}

func (f *Factory) fromNormalized(path string) *Pathname {
	return &Pathname{
		rules:        f.rules,
		path:         path,
		prefixLength: f.rules.PrefixLength(path),
	}
}

// FromPath builds a pathname from a single path string. A nil path reports
// ErrNullArgument.
func (f *Factory) FromPath(path *string) (*Pathname, error) {
	if path == nil {
		return nil, ErrNullArgument
	}
	return f.fromNormalized(f.rules.Normalize(*path)), nil
}

// FromParentChild resolves child against parent. An empty parent is replaced
// by the platform's default parent. A nil child is rejected rather than
// silently dropping parent.
func (f *Factory) FromParentChild(parent string, child *string) (*Pathname, error) {
	if child == nil {
		return nil, invalidArgument(ReasonChildAbsent)
	}
	resolved := f.rules.Resolve(f.rules.Normalize(parent), f.rules.Normalize(*child))
	return f.fromNormalized(resolved), nil
}
