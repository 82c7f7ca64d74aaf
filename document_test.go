package pkgmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDocumentYAML(t *testing.T) {
	p := writeDoc(t, `
default:
  curl: curl
family:
  debian:
    devtools: build-essential
distro:
  ubuntu:
    devtools: build-essential
release:
  ubuntu:
    jammy:
      devtools: build-essential
`)

	doc, err := LoadDocument(p)
	assert.NoError(t, err)
	assert.Equal(t, "curl", doc.Default["curl"])
	assert.Equal(t, "build-essential", doc.Family["debian"]["devtools"])
	assert.Equal(t, "build-essential", doc.Release["ubuntu"]["jammy"]["devtools"])
}

func TestLoadDocumentJSON(t *testing.T) {
	// Mapping documents in the wild are often plain JSON, which the YAML
	// decoder accepts unchanged.
	p := writeDoc(t, `{"default": {"a": "pkg-a"}, "distro": {"fedora": {"a": "pkg-a-fc"}}}`)

	doc, err := LoadDocument(p)
	assert.NoError(t, err)
	assert.Equal(t, "pkg-a-fc", doc.Distro["fedora"]["a"])
}

func TestLoadDocumentNotFound(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadDocumentMalformed(t *testing.T) {
	p := writeDoc(t, `default: [not, a, map]`)

	_, err := LoadDocument(p)
	var malformed *MalformedDocumentError
	assert.ErrorAs(t, err, &malformed)
	assert.Equal(t, p, malformed.Path)
	assert.Error(t, malformed.Err, "the original parse diagnostic should be preserved")
}

func TestParseDocumentUnknownSection(t *testing.T) {
	_, err := ParseDocument("test", []byte("defualt:\n  a: pkg-a\n"))
	var malformed *MalformedDocumentError
	assert.ErrorAs(t, err, &malformed, "unknown top-level sections should be rejected, not dropped")
}

func TestParseDocumentDuplicateKey(t *testing.T) {
	_, err := ParseDocument("test", []byte("default:\n  a: pkg-a\ndefault:\n  a: pkg-a2\n"))
	var malformed *MalformedDocumentError
	assert.ErrorAs(t, err, &malformed, "duplicate sections should be rejected, not last-one-wins")
}

func TestParseDocumentStrictStillParsesValid(t *testing.T) {
	doc, err := ParseDocument("test", []byte(`{"default": {"a": "pkg-a"}, "family": {"redhat": {"a": "pkg-a-rh"}}, "distro": {"fedora": {"b": ""}}}`))
	assert.NoError(t, err)

	out, err := doc.Resolve(ResolveOptions{Distro: "fedora"}, "a", "b")
	assert.NoError(t, err)
	assert.Equal(t, []string{"pkg-a-rh"}, out)
}

func TestParseDocumentEmpty(t *testing.T) {
	doc, err := ParseDocument("test", []byte("{}"))
	assert.NoError(t, err)
	assert.Empty(t, doc.Default)

	out, err := doc.Resolve(ResolveOptions{Distro: "fedora", MissingOK: true}, "a")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, out)
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pkg-map")
	assert.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}
