// Package pathrules teaches the pathname core about the textual conventions
// of a platform's filesystem:
// - which byte separates path segments
// - which byte separates entries of a search path
// - what counts as a root, drive or UNC prefix
// - how a child segment is joined onto a parent
//
// Every function here is pure string manipulation. Nothing touches the
// filesystem and nothing rejects input; deciding whether a path is usable is
// left to the caller.
//
// The Windows rules do not depend on the host OS, so they can be exercised
// from any platform.
package pathrules

// Rules is the set of platform-dependent decisions the pathname core delegates to.
type Rules interface {
	// Name identifies the platform, e.g. "unix".
	Name() string
	// Separator is the byte that delimits path segments.
	Separator() byte
	// PathListSeparator is the byte that delimits entries of a search path.
	PathListSeparator() byte
	// Normalize performs syntactic cleanup. It is idempotent.
	Normalize(raw string) string
	// PrefixLength returns the number of leading bytes of a normalized path
	// that form its root prefix.
	PrefixLength(normalized string) int
	// IsAbsolute reports whether a normalized path is anchored at a root.
	IsAbsolute(normalized string) bool
	// Resolve joins child onto parent. Both must already be normalized.
	Resolve(parent, child string) string
	// DefaultParent is the anchor substituted for an empty parent.
	DefaultParent() string
	// FromURIPath converts the path component of a file URI into the
	// platform's path syntax, apart from separator replacement.
	FromURIPath(raw string) string
}

// Names of the built-in rule sets.
const (
	UnixName    = "unix"
	WindowsName = "windows"
)

// Lookup returns the built-in rules registered under name.
func Lookup(name string) (Rules, bool) {
	switch name {
	case UnixName:
		return Unix, true
	case WindowsName:
		return Windows, true
	}
	return nil, false
}

// collapse appends s[from:] to out, reducing every run of sep to a single
// byte. A run that continues a sep already at the end of out is dropped.
func collapse(out []byte, s string, from int, sep byte) []byte {
	prev := byte(0)
	if len(out) > 0 {
		prev = out[len(out)-1]
	}
	for i := from; i < len(s); i++ {
		c := s[i]
		if c == sep && prev == sep {
			continue
		}
		out = append(out, c)
		prev = c
	}
	return out
}

// trimTrailing drops a trailing sep from out when it lies past keep bytes.
func trimTrailing(out []byte, sep byte, keep int) []byte {
	if len(out) > keep && out[len(out)-1] == sep {
		return out[:len(out)-1]
	}
	return out
}

func trimOneTrailing(p string, sep byte, minLen int) string {
	if len(p) > minLen && p[len(p)-1] == sep {
		return p[:len(p)-1]
	}
	return p
}
