// Package pathname implements an abstract pathname: a normalized,
// platform-correct path string together with the length of its root prefix.
//
// Nothing in this package touches the filesystem. A Pathname describes a
// location whether or not anything exists there.
package pathname

import (
	"strings"
	"sync/atomic"

	"pathname/internal/pathrules"
	"pathname/internal/platform"
)

// Separators of the host platform, fixed for the life of the process.
var (
	// SeparatorChar delimits path segments, '/' or '\'.
	SeparatorChar = platform.Rules().Separator()
	// Separator is SeparatorChar as a string.
	Separator = string(SeparatorChar)
	// PathListSeparatorChar delimits entries of a search path, ':' or ';'.
	PathListSeparatorChar = platform.Rules().PathListSeparator()
	// PathListSeparator is PathListSeparatorChar as a string.
	PathListSeparator = string(PathListSeparatorChar)
)

type validity = int32

const (
	unchecked validity = iota
	checked
	invalid
)

// containsNUL is the scan behind IsInvalid.
var containsNUL = func(path string) bool {
	return strings.IndexByte(path, 0) >= 0
}

// Pathname is an immutable abstract pathname. Use it by pointer; it must not
// be copied once built.
type Pathname struct {
	rules        pathrules.Rules
	path         string
	prefixLength int
	status       validity
}

// Path returns the normalized path string.
func (p *Pathname) Path() string {
	return p.path
}

// String implements fmt.Stringer
func (p *Pathname) String() string {
	return p.path
}

// PrefixLength returns the number of leading bytes of Path that form the
// root, drive or UNC prefix. It is zero for a relative path.
func (p *Pathname) PrefixLength() int {
	return p.prefixLength
}

// IsAbsolute reports whether the path is anchored at a root.
func (p *Pathname) IsAbsolute() bool {
	return p.rules.IsAbsolute(p.path)
}

// IsInvalid reports whether the path contains a NUL byte. The answer is
// computed once and remembered.
//
// A false result only means this one cheap check passed; it does not mean the
// path is acceptable to the filesystem.
func (p *Pathname) IsInvalid() bool {
	status := atomic.LoadInt32(&p.status)
	if status == unchecked {
		verdict := checked
		if containsNUL(p.path) {
			verdict = invalid
		}
		// Racing callers compute the same verdict; whoever publishes first wins.
		atomic.CompareAndSwapInt32(&p.status, unchecked, verdict)
		status = atomic.LoadInt32(&p.status)
	}
	return status == invalid
}

// Child returns the pathname for name inside p. name is normalized and must
// not carry a root prefix of its own.
func (p *Pathname) Child(name string) (*Pathname, error) {
	if p.path == "" {
		return nil, invalidArgument(ReasonParentPathIsEmpty)
	}
	name = p.rules.Normalize(name)
	if p.rules.PrefixLength(name) != 0 {
		return nil, invalidArgument(ReasonChildNotRelative)
	}
	return resolveChild(p, name), nil
}

// resolveChild builds child inside parent without recomputing the prefix
// length: appending a relative segment never changes the root prefix.
func resolveChild(parent *Pathname, child string) *Pathname {
	if parent.path == "" {
		panic("bug: resolving a child against an empty parent path")
	}
	if parent.rules.PrefixLength(child) != 0 {
		panic("bug: resolving a child with a root prefix: " + child)
	}
	return &Pathname{
		rules:        parent.rules,
		path:         parent.rules.Resolve(parent.path, child),
		prefixLength: parent.prefixLength,
	}
}
