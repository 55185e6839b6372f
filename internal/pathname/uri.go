package pathname

import (
	"net/url"
	"strings"
)

// uriShape is the subset of a URI the file-URI checks look at.
type uriShape struct {
	scheme       string
	opaque       bool
	hasAuthority bool
	hasFragment  bool
	hasQuery     bool
	path         string
}

func shapeOf(u *url.URL) uriShape {
	return uriShape{
		scheme:       u.Scheme,
		opaque:       u.Opaque != "",
		hasAuthority: u.Host != "" || u.User != nil,
		hasFragment:  u.Fragment != "",
		hasQuery:     u.RawQuery != "" || u.ForceQuery,
		path:         u.Path,
	}
}

// reason returns why s cannot name a local file, or "" if it can. The checks
// run in a fixed order and the first failure wins.
func (s uriShape) reason() string {
	switch {
	case s.scheme == "":
		return ReasonURINotAbsolute
	case s.opaque:
		return ReasonURIOpaque
	case !strings.EqualFold(s.scheme, "file"):
		return ReasonURINotFileScheme
	case s.hasAuthority:
		return ReasonURIHasAuthority
	case s.hasFragment:
		return ReasonURIHasFragment
	case s.hasQuery:
		return ReasonURIHasQuery
	case s.path == "":
		return ReasonURIEmptyPath
	}
	return ""
}

// FromURI builds a pathname from an absolute, hierarchical file URI with no
// authority, fragment or query, e.g. file:///tmp/x.
func (f *Factory) FromURI(u *url.URL) (*Pathname, error) {
	if u == nil {
		return nil, ErrNullArgument
	}
	return f.fromURIShape(shapeOf(u))
}

// FromURIString parses raw and builds a pathname from it as FromURI does.
// Unlike a parsed *url.URL, the raw text also reveals an empty fragment
// ("file:///x#").
func (f *Factory) FromURIString(raw string) (*Pathname, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidArgument(ReasonURIMalformed + ": " + err.Error())
	}
	shape := shapeOf(u)
	shape.hasFragment = shape.hasFragment || strings.Contains(raw, "#")
	return f.fromURIShape(shape)
}

func (f *Factory) fromURIShape(shape uriShape) (*Pathname, error) {
	if reason := shape.reason(); reason != "" {
		return nil, invalidArgument(reason)
	}
	p := f.rules.FromURIPath(shape.path)
	if sep := f.rules.Separator(); sep != '/' {
		p = strings.ReplaceAll(p, "/", string(sep))
	}
	return f.fromNormalized(f.rules.Normalize(p)), nil
}
