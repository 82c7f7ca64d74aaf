package elements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/pkgmap/pkgmap"
)

func writeElement(t *testing.T, root, element, body string) {
	t.Helper()
	dir := filepath.Join(root, element)
	assert.NilError(t, os.MkdirAll(dir, 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(dir, DocumentName), []byte(body), 0o600))
}

func TestLocate(t *testing.T) {
	root := t.TempDir()
	writeElement(t, root, "web-server", "default:\n  httpd: apache2\n")

	t.Run("found", func(t *testing.T) {
		p, err := Locate(root, "web-server")
		assert.NilError(t, err)
		assert.Check(t, cmp.Equal(p, filepath.Join(root, "web-server", DocumentName)))
	})

	t.Run("unknown element", func(t *testing.T) {
		_, err := Locate(root, "no-such-element")
		assert.ErrorIs(t, err, pkgmap.ErrNotFound)
	})

	t.Run("empty element name", func(t *testing.T) {
		_, err := Locate(root, "")
		assert.Check(t, err != nil)
	})

	t.Run("element dir without document", func(t *testing.T) {
		assert.NilError(t, os.MkdirAll(filepath.Join(root, "bare"), 0o755))
		_, err := Locate(root, "bare")
		assert.ErrorIs(t, err, pkgmap.ErrNotFound)
	})
}

func TestLocateSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeElement(t, first, "shared", "default:\n  a: from-first\n")
	writeElement(t, second, "shared", "default:\n  a: from-second\n")
	writeElement(t, second, "only-second", "default:\n  b: pkg-b\n")

	searchPath := strings.Join([]string{first, second}, string(filepath.ListSeparator))

	p, err := Locate(searchPath, "shared")
	assert.NilError(t, err)
	assert.Check(t, cmp.Equal(p, filepath.Join(first, "shared", DocumentName)), "earlier directories shadow later ones")

	p, err = Locate(searchPath, "only-second")
	assert.NilError(t, err)
	assert.Check(t, cmp.Equal(p, filepath.Join(second, "only-second", DocumentName)))
}

func TestList(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeElement(t, first, "zeta", "{}")
	writeElement(t, first, "alpha", "{}")
	writeElement(t, second, "alpha", "{}")
	writeElement(t, second, "mid", "{}")
	// A directory without a document is not an element.
	assert.NilError(t, os.MkdirAll(filepath.Join(first, "bare"), 0o755))

	searchPath := strings.Join([]string{first, second, "/does/not/exist"}, string(filepath.ListSeparator))

	got := List(searchPath)
	assert.Check(t, cmp.DeepEqual(got, []string{"alpha", "mid", "zeta"}))
}

func TestListEmptyPath(t *testing.T) {
	assert.Check(t, cmp.Len(List(""), 0))
}
