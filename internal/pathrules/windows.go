package pathrules

import "strings"

// Windows is the rule set for drive-letter and UNC style paths. '/' is
// accepted on input and rewritten to '\'.
var Windows Rules = windowsRules{}

type windowsRules struct{}

const (
	winSlash    = '\\'
	winAltSlash = '/'
)

func (windowsRules) Name() string { return WindowsName }

func (windowsRules) Separator() byte { return winSlash }

func (windowsRules) PathListSeparator() byte { return ';' }

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Normalize rewrites '/' to '\', keeps the UNC ("\\"), drive ("c:" or "c:\")
// or root ("\") prefix intact and collapses every other run of separators.
// Trailing separators outside the prefix are dropped.
func (windowsRules) Normalize(raw string) string {
	s := strings.ReplaceAll(raw, string(winAltSlash), string(winSlash))
	out := make([]byte, 0, len(s))
	i := 0
	switch {
	case len(s) >= 2 && s[0] == winSlash && s[1] == winSlash:
		out = append(out, winSlash, winSlash)
		i = 2
	case len(s) >= 2 && isLetter(s[0]) && s[1] == ':':
		out = append(out, s[0], ':')
		i = 2
		if i < len(s) && s[i] == winSlash {
			out = append(out, winSlash)
			i++
		}
	case len(s) >= 1 && s[0] == winSlash:
		out = append(out, winSlash)
		i = 1
	}
	keep := len(out)
	out = collapse(out, s, i, winSlash)
	out = trimTrailing(out, winSlash, keep)
	if string(out) == raw {
		return raw
	}
	return string(out)
}

// PrefixLength recognizes:
//   \\server\share  2  UNC
//   \foo            1  drive-relative
//   c:\foo          3  drive-absolute
//   c:foo           2  directory-relative
func (windowsRules) PrefixLength(normalized string) int {
	n := len(normalized)
	if n == 0 {
		return 0
	}
	c0 := normalized[0]
	var c1 byte
	if n > 1 {
		c1 = normalized[1]
	}
	if c0 == winSlash {
		if c1 == winSlash {
			return 2
		}
		return 1
	}
	if isLetter(c0) && c1 == ':' {
		if n > 2 && normalized[2] == winSlash {
			return 3
		}
		return 2
	}
	return 0
}

func (w windowsRules) IsAbsolute(normalized string) bool {
	switch w.PrefixLength(normalized) {
	case 2:
		return normalized[0] == winSlash
	case 3:
		return true
	}
	return false
}

// Resolve returns an absolute child unchanged. A drive-relative child loses
// its leading separator, and a directory-relative parent such as "c:" is
// joined without one.
func (w windowsRules) Resolve(parent, child string) string {
	if parent == "" {
		parent = w.DefaultParent()
	}
	if child == "" {
		return parent
	}
	if w.IsAbsolute(child) {
		return child
	}
	if child[0] == winSlash {
		child = child[1:]
		if child == "" {
			return parent
		}
	}
	if isDirectoryRelative(parent) || parent[len(parent)-1] == winSlash {
		return parent + child
	}
	return parent + string(winSlash) + child
}

func isDirectoryRelative(p string) bool {
	return len(p) == 2 && isLetter(p[0]) && p[1] == ':'
}

func (windowsRules) DefaultParent() string { return string(winSlash) }

// FromURIPath strips the leading '/' in front of a drive letter, so that
// "/c:/foo/" becomes "c:/foo". The drive root "/c:/" becomes "c:/".
func (windowsRules) FromURIPath(raw string) string {
	p := raw
	if len(p) > 2 && p[2] == ':' {
		p = p[1:]
		return trimOneTrailing(p, winAltSlash, 3)
	}
	return trimOneTrailing(p, winAltSlash, 1)
}
