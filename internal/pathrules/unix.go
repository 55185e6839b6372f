package pathrules

import "strings"

// Unix is the rule set for platforms that use '/' as their only separator.
var Unix Rules = unixRules{}

type unixRules struct{}

func (unixRules) Name() string { return UnixName }

func (unixRules) Separator() byte { return '/' }

func (unixRules) PathListSeparator() byte { return ':' }

// Normalize collapses runs of '/' and drops a trailing '/' unless the path is
// the root itself. "." and ".." segments are left alone.
func (unixRules) Normalize(raw string) string {
	if isNormalUnix(raw) {
		return raw
	}
	out := collapse(make([]byte, 0, len(raw)), raw, 0, '/')
	return string(trimTrailing(out, '/', 1))
}

func isNormalUnix(p string) bool {
	prev := byte(0)
	for i := 0; i < len(p); i++ {
		if p[i] == '/' && prev == '/' {
			return false
		}
		prev = p[i]
	}
	return len(p) <= 1 || prev != '/'
}

func (unixRules) PrefixLength(normalized string) int {
	if strings.HasPrefix(normalized, "/") {
		return 1
	}
	return 0
}

func (u unixRules) IsAbsolute(normalized string) bool {
	return u.PrefixLength(normalized) == 1
}

func (u unixRules) Resolve(parent, child string) string {
	if parent == "" {
		parent = u.DefaultParent()
	}
	if child == "" {
		return parent
	}
	if u.IsAbsolute(child) {
		return child
	}
	if strings.HasSuffix(parent, "/") {
		return parent + child
	}
	return parent + "/" + child
}

func (unixRules) DefaultParent() string { return "/" }

// FromURIPath turns "/foo/" into "/foo" but leaves "/" untouched.
func (unixRules) FromURIPath(raw string) string {
	return trimOneTrailing(raw, '/', 1)
}
