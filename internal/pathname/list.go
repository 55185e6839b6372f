package pathname

import "strings"

// SplitList splits a search path such as $PATH into pathnames. Empty entries
// are skipped.
func (f *Factory) SplitList(list string) []*Pathname {
	var paths []*Pathname
	for _, entry := range strings.Split(list, string(f.rules.PathListSeparator())) {
		if entry == "" {
			continue
		}
		paths = append(paths, f.fromNormalized(f.rules.Normalize(entry)))
	}
	return paths
}

// JoinList is the inverse of SplitList.
func (f *Factory) JoinList(paths []*Pathname) string {
	entries := make([]string, len(paths))
	for index, path := range paths {
		entries[index] = path.Path()
	}
	return strings.Join(entries, string(f.rules.PathListSeparator()))
}
