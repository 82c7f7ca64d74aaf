// Package elements locates per-element mapping documents under a
// colon-separated search path of element directories.
package elements

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/pkgmap/pkgmap"
)

// DocumentName is the file name of a mapping document inside an element
// directory.
const DocumentName = "pkg-map"

// DefaultPath is the search path used when ELEMENTS_PATH is not set.
const DefaultPath = "/usr/share/pkgmap/elements"

// Locate returns the path of the mapping document for element, searching each
// directory in searchPath (a filepath.ListSeparator-separated list) in order
// and stopping at the first hit. It returns [pkgmap.ErrNotFound] when no
// directory carries a document for the element.
func Locate(searchPath, element string) (string, error) {
	if element == "" {
		return "", errors.New("no element specified")
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, element, DocumentName)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", errors.Wrap(pkgmap.ErrNotFound, element)
}

// List returns the names of all elements under searchPath that carry a
// mapping document, in lexical order. An element appearing in multiple
// directories is listed once; directories that cannot be read are skipped,
// matching Locate's shadowing behavior.
func List(searchPath string) []string {
	seen := map[string]bool{}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		ents, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, ent := range ents {
			if !ent.IsDir() || seen[ent.Name()] {
				continue
			}
			p := filepath.Join(dir, ent.Name(), DocumentName)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				seen[ent.Name()] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
